package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// FindByEmail looks up a customer by email for an owner. Returns (nil, nil)
// when absent.
func (r *CustomerRepository) FindByEmail(ctx context.Context, ownerID uuid.UUID, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("owner_id = ? AND email = ?", ownerID, email).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByID retrieves a customer with owner isolation
func (r *CustomerRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// GetAll retrieves customers for an owner
func (r *CustomerRepository) GetAll(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	query.Model(&models.Customer{}).Count(&total)
	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// Delete deletes a customer with owner isolation
func (r *CustomerRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
