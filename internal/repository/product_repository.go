package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

const (
	ProductListCacheTTL = 15 * time.Minute
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type ProductRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewProductRepository(db *gorm.DB, redis *redis.Client) *ProductRepository {
	return &ProductRepository{
		db:    db,
		redis: redis,
	}
}

func (r *ProductRepository) invalidateProductCaches(ctx context.Context, ownerID uuid.UUID) {
	if r.redis == nil {
		return
	}
	pattern := fmt.Sprintf("dashly:products:%s:*", ownerID)
	keys, _ := r.redis.Keys(ctx, pattern).Result()
	if len(keys) > 0 {
		r.redis.Del(ctx, keys...)
	}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Create(product).Error
	if err == nil {
		r.invalidateProductCaches(ctx, product.OwnerID)
	}
	return err
}

// FindByName looks up a product by exact name for an owner. Returns
// (nil, nil) when absent.
func (r *ProductRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("owner_id = ? AND name = ?", ownerID, name).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID retrieves a product with its category, owner-scoped
func (r *ProductRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Category").
		Where("id = ? AND owner_id = ?", id, ownerID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetAll retrieves products for an owner with caching, optionally filtered
// by category
func (r *ProductRepository) GetAll(ctx context.Context, ownerID uuid.UUID, categoryID *uuid.UUID, limit, offset int) ([]models.Product, int64, error) {
	cacheKey := fmt.Sprintf("dashly:products:%s:list:%v:%d:%d", ownerID, categoryID, limit, offset)

	type listResult struct {
		Products []models.Product `json:"products"`
		Total    int64            `json:"total"`
	}

	if r.redis != nil {
		val, err := r.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var result listResult
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Total, nil
			}
		}
	}

	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var products []models.Product
	var total int64
	query.Model(&models.Product{}).Count(&total)
	err := query.Preload("Category").Order("name ASC").Limit(limit).Offset(offset).Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	if r.redis != nil {
		data, err := json.Marshal(listResult{Products: products, Total: total})
		if err == nil {
			r.redis.Set(ctx, cacheKey, data, ProductListCacheTTL)
		}
	}

	return products, total, nil
}

// Update updates a product with owner isolation
func (r *ProductRepository) Update(ctx context.Context, ownerID uuid.UUID, product *models.Product) error {
	var existing models.Product
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", product.ID, ownerID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	product.OwnerID = ownerID
	err = r.db.WithContext(ctx).Save(product).Error
	if err == nil {
		r.invalidateProductCaches(ctx, ownerID)
	}
	return err
}

// Delete deletes a product with owner isolation
func (r *ProductRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	r.invalidateProductCaches(ctx, ownerID)
	return nil
}
