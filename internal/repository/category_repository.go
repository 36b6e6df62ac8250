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

// Cache TTL constants
const (
	CategoryCacheTTL     = 30 * time.Minute // Categories rarely change
	CategoryListCacheTTL = 15 * time.Minute // Category lists
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

type CategoryRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewCategoryRepository(db *gorm.DB, redis *redis.Client) *CategoryRepository {
	return &CategoryRepository{
		db:    db,
		redis: redis,
	}
}

// invalidateCategoryCaches invalidates all caches related to categories for an owner
func (r *CategoryRepository) invalidateCategoryCaches(ctx context.Context, ownerID uuid.UUID) {
	if r.redis == nil {
		return
	}
	pattern := fmt.Sprintf("dashly:categories:%s:*", ownerID)
	keys, _ := r.redis.Keys(ctx, pattern).Result()
	if len(keys) > 0 {
		r.redis.Del(ctx, keys...)
	}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if err == nil {
		r.invalidateCategoryCaches(ctx, category.OwnerID)
	}
	return err
}

// FindByName looks up a category by exact name for an owner. Returns
// (nil, nil) when no such category exists, so callers can apply the
// find-then-create contract.
func (r *CategoryRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("owner_id = ? AND name = ?", ownerID, name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetByID retrieves a category by ID with owner isolation
func (r *CategoryRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetAll retrieves all categories for an owner with caching
func (r *CategoryRepository) GetAll(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Category, int64, error) {
	cacheKey := fmt.Sprintf("dashly:categories:%s:list:%d:%d", ownerID, limit, offset)

	type listResult struct {
		Categories []models.Category `json:"categories"`
		Total      int64             `json:"total"`
	}

	if r.redis != nil {
		val, err := r.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var result listResult
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Categories, result.Total, nil
			}
		}
	}

	var categories []models.Category
	var total int64
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	query.Model(&models.Category{}).Count(&total)
	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}

	if r.redis != nil {
		data, err := json.Marshal(listResult{Categories: categories, Total: total})
		if err == nil {
			r.redis.Set(ctx, cacheKey, data, CategoryListCacheTTL)
		}
	}

	return categories, total, nil
}

// Update updates a category with owner isolation
func (r *CategoryRepository) Update(ctx context.Context, ownerID uuid.UUID, category *models.Category) error {
	var existing models.Category
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", category.ID, ownerID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	category.OwnerID = ownerID
	err = r.db.WithContext(ctx).Save(category).Error
	if err == nil {
		r.invalidateCategoryCaches(ctx, ownerID)
	}
	return err
}

// Delete deletes a category with owner isolation
func (r *CategoryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	r.invalidateCategoryCaches(ctx, ownerID)
	return nil
}
