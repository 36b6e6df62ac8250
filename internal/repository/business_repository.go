package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a business profile
func (r *BusinessRepository) Create(ctx context.Context, business *models.Business) error {
	return r.db.WithContext(ctx).Create(business).Error
}

// GetByOwner retrieves the business profile for an owner. Returns (nil, nil)
// when none exists yet.
func (r *BusinessRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

// GetOrCreate returns the owner's business profile, creating one with
// defaults on first use.
func (r *BusinessRepository) GetOrCreate(ctx context.Context, ownerID uuid.UUID, name string) (*models.Business, error) {
	business, err := r.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if business != nil {
		return business, nil
	}

	if name == "" {
		name = "My Business"
	}
	business = &models.Business{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       name,
		Currency:   "USD",
		FooterText: "Thank you for your business!",
	}
	if err := r.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

// Update saves a business profile
func (r *BusinessRepository) Update(ctx context.Context, business *models.Business) error {
	return r.db.WithContext(ctx).Save(business).Error
}
