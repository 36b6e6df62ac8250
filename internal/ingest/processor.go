package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

// Store is the persistence collaborator the ingestion core talks to. Finders
// return (nil, nil) when no matching record exists for the owner, so the
// processor can apply an explicit find-then-create contract without relying
// on upsert behavior.
type Store interface {
	FindCategoryByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	FindProductByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	CreateSale(ctx context.Context, sale *models.Sale) error
}

// saleDateLayouts are tried in order when parsing the row's date column.
var saleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// RowProcessor turns one validated row into persisted entities.
type RowProcessor struct {
	store Store
}

func NewRowProcessor(store Store) *RowProcessor {
	return &RowProcessor{store: store}
}

// ProcessRow resolves or creates the row's category and product, then records
// a new sale. A pre-existing product keeps whatever category it already has,
// even when the row names a different one. Any error is a row-level failure
// for the caller to accumulate; it must not abort the batch.
func (p *RowProcessor) ProcessRow(ctx context.Context, ownerID uuid.UUID, row Row) (*models.Category, *models.Product, *models.Sale, error) {
	saleDate, err := parseSaleDate(row.Values["date"])
	if err != nil {
		return nil, nil, nil, err
	}

	category, err := p.store.FindCategoryByName(ctx, ownerID, row.Values["category_name"])
	if err != nil {
		return nil, nil, nil, err
	}
	if category == nil {
		category = &models.Category{
			ID:      uuid.New(),
			OwnerID: ownerID,
			Name:    row.Values["category_name"],
		}
		if err := p.store.CreateCategory(ctx, category); err != nil {
			return nil, nil, nil, err
		}
	}

	product, err := p.store.FindProductByName(ctx, ownerID, row.Values["product_name"])
	if err != nil {
		return nil, nil, nil, err
	}
	if product == nil {
		product = &models.Product{
			ID:         uuid.New(),
			OwnerID:    ownerID,
			Name:       row.Values["product_name"],
			CategoryID: category.ID,
		}
		if err := p.store.CreateProduct(ctx, product); err != nil {
			return nil, nil, nil, err
		}
	}

	sale := &models.Sale{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ProductID:   product.ID,
		Price:       row.Values["price"],
		Quantity:    int(row.Numbers["quantity"]),
		TotalAmount: row.Values["total_amount"],
		SaleDate:    saleDate,
	}
	setOptional(&sale.Employee, row.Values["employee"])
	setOptional(&sale.CustomerName, row.Values["customer_name"])
	setOptional(&sale.CustomerEmail, row.Values["customer_email"])
	setOptional(&sale.PaymentMethod, row.Values["payment_method"])
	setOptional(&sale.Status, row.Values["status"])

	if err := p.store.CreateSale(ctx, sale); err != nil {
		return nil, nil, nil, err
	}
	return category, product, sale, nil
}

func parseSaleDate(v string) (time.Time, error) {
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid sale date: %s", v)
}

func setOptional(dst **string, v string) {
	if v != "" {
		*dst = &v
	}
}
