package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

// SalesStore adapts the category, product and sale repositories to the
// ingestion core's persistence contract.
type SalesStore struct {
	categories *CategoryRepository
	products   *ProductRepository
	sales      *SaleRepository
}

func NewSalesStore(categories *CategoryRepository, products *ProductRepository, sales *SaleRepository) *SalesStore {
	return &SalesStore{
		categories: categories,
		products:   products,
		sales:      sales,
	}
}

func (s *SalesStore) FindCategoryByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Category, error) {
	return s.categories.FindByName(ctx, ownerID, name)
}

func (s *SalesStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.categories.Create(ctx, category)
}

func (s *SalesStore) FindProductByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Product, error) {
	return s.products.FindByName(ctx, ownerID, name)
}

func (s *SalesStore) CreateProduct(ctx context.Context, product *models.Product) error {
	return s.products.Create(ctx, product)
}

func (s *SalesStore) CreateSale(ctx context.Context, sale *models.Sale) error {
	return s.sales.Create(ctx, sale)
}
