// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// ProductsRepositoryInterface defines the interface for catalog product repository operations.
type ProductsRepositoryInterface interface {
	All(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, productID string) (*model.Product, error)
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, products []model.Product) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
