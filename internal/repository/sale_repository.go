package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

var (
	ErrSaleNotFound = errors.New("sale not found")
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create records a new sale. Sales are append-only and never deduplicated.
func (r *SaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// GetByID retrieves a sale with its product and category, owner-scoped
func (r *SaleRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.WithContext(ctx).Preload("Product").Preload("Product.Category").
		Where("id = ? AND owner_id = ?", id, ownerID).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// List retrieves sales matching the filters, newest first, with the total
// count for pagination.
func (r *SaleRepository) List(ctx context.Context, filters models.SaleFilters) ([]models.Sale, int64, error) {
	query := r.filtered(ctx, filters)

	var total int64
	if err := query.Model(&models.Sale{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit
	var sales []models.Sale
	err := query.Preload("Product").Preload("Product.Category").
		Order("sale_date DESC").Offset(offset).Limit(filters.Limit).Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// ListAll retrieves every sale matching the filters without pagination,
// used by the export paths.
func (r *SaleRepository) ListAll(ctx context.Context, filters models.SaleFilters) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.filtered(ctx, filters).Preload("Product").Preload("Product.Category").
		Order("sale_date ASC").Find(&sales).Error
	return sales, err
}

// Delete deletes a sale with owner isolation
func (r *SaleRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Sale{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSaleNotFound
	}
	return nil
}

func (r *SaleRepository) filtered(ctx context.Context, filters models.SaleFilters) *gorm.DB {
	query := r.db.WithContext(ctx).Where("sales.owner_id = ?", filters.OwnerID)
	if filters.ProductID != nil {
		query = query.Where("sales.product_id = ?", *filters.ProductID)
	}
	if filters.CategoryID != nil {
		query = query.Joins("JOIN products ON products.id = sales.product_id").
			Where("products.category_id = ?", *filters.CategoryID)
	}
	if filters.DateFrom != nil {
		query = query.Where("sales.sale_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("sales.sale_date <= ?", *filters.DateTo)
	}
	return query
}

// ============================================================================
// Analytics aggregations
// ============================================================================

// Summary computes the headline numbers for an owner over a period.
func (r *SaleRepository) Summary(ctx context.Context, filters models.SaleFilters) (*models.SalesSummary, error) {
	var summary models.SalesSummary
	err := r.filtered(ctx, filters).Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_revenue, COUNT(*) AS sale_count, COALESCE(SUM(quantity), 0) AS units_sold, COALESCE(AVG(total_amount), 0) AS average_sale").
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// RevenueByCategory groups revenue per category name, highest first.
func (r *SaleRepository) RevenueByCategory(ctx context.Context, filters models.SaleFilters) ([]models.CategoryRevenue, error) {
	var rows []models.CategoryRevenue
	err := r.filtered(ctx, filters).Model(&models.Sale{}).
		Select("categories.name AS category_name, COALESCE(SUM(sales.total_amount), 0) AS revenue, COUNT(*) AS sale_count").
		Joins("JOIN products p ON p.id = sales.product_id").
		Joins("JOIN categories ON categories.id = p.category_id").
		Group("categories.name").
		Order("revenue DESC").
		Scan(&rows).Error
	return rows, err
}

// MonthlyRevenue buckets revenue per calendar month, oldest first.
func (r *SaleRepository) MonthlyRevenue(ctx context.Context, filters models.SaleFilters) ([]models.MonthlyRevenue, error) {
	var rows []models.MonthlyRevenue
	err := r.filtered(ctx, filters).Model(&models.Sale{}).
		Select("to_char(sale_date, 'YYYY-MM') AS month, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS sale_count").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

// TopProducts ranks products by revenue.
func (r *SaleRepository) TopProducts(ctx context.Context, filters models.SaleFilters, limit int) ([]models.ProductSales, error) {
	var rows []models.ProductSales
	err := r.filtered(ctx, filters).Model(&models.Sale{}).
		Select("p.name AS product_name, COALESCE(SUM(sales.quantity), 0) AS units_sold, COALESCE(SUM(sales.total_amount), 0) AS revenue").
		Joins("JOIN products p ON p.id = sales.product_id").
		Group("p.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// PaymentMethods breaks sales down by payment method. Sales without one are
// bucketed under "unknown".
func (r *SaleRepository) PaymentMethods(ctx context.Context, filters models.SaleFilters) ([]models.PaymentMethodBreakdown, error) {
	var rows []models.PaymentMethodBreakdown
	err := r.filtered(ctx, filters).Model(&models.Sale{}).
		Select("COALESCE(payment_method, 'unknown') AS payment_method, COUNT(*) AS sale_count, COALESCE(SUM(total_amount), 0) AS revenue").
		Group("payment_method").
		Order("revenue DESC").
		Scan(&rows).Error
	return rows, err
}
