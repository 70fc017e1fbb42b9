package app

import (
	"testing"
	"time"

	"github.com/guttosm/storefront-service/config"
	"github.com/stretchr/testify/assert"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Catalog: config.CatalogConfig{
					CacheSize: 1000,
					CacheTTL:  5 * time.Minute,
				},
				Cart: config.CartConfig{
					Backend:  "memory",
					ToastTTL: time.Second,
				},
			},
		},
		{
			name: "creates router with search cache disabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Catalog: config.CatalogConfig{
					CacheSize: 0,
				},
				Cart: config.CartConfig{
					Backend: "memory",
				},
			},
		},
		{
			name: "creates router without database",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Cart: config.CartConfig{
					Backend: "memory",
				},
				Database: config.DatabaseConfig{
					Enabled: false,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			assert.NotNil(t, router)
		})
	}
}
