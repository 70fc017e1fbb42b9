// Package main is the entry point for the storefront-service application.
//
// @title           Storefront Service API
// @version         1.0.0
// @description     API for a food ordering storefront: product catalog search,
//
//	weight-tier pricing, selection overlays, and an append-only cart.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Product catalog browsing and search
//
// @tag.name        Selections
// @tag.description Selection overlay lifecycle
//
// @tag.name        Cart
// @tag.description Cart contents and badge count
//
// @tag.name        Notifications
// @tag.description Active toast notifications
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/storefront-service/docs" // swagger docs

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
