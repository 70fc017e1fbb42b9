// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// MockProductsRepositoryInterface is a testify mock for
// repository.ProductsRepositoryInterface.
type MockProductsRepositoryInterface struct {
	mock.Mock
}

// NewMockProductsRepositoryInterface creates a mock with expectations asserted on test cleanup.
func NewMockProductsRepositoryInterface(t *testing.T) *MockProductsRepositoryInterface {
	m := &MockProductsRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductsRepositoryInterface) All(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductsRepositoryInterface) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductsRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductsRepositoryInterface) Seed(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}
