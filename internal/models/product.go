package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item scoped to one owning user. Like categories,
// products are resolved by exact name during ingestion and created on demand.
// A product keeps the category it was first created under; ingestion never
// re-links an existing product to another category.
type Product struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID    uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;uniqueIndex:idx_owner_product_name"`
	Name       string    `json:"name" gorm:"not null;uniqueIndex:idx_owner_product_name"`
	CategoryID uuid.UUID `json:"categoryId" gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name       string    `json:"name" binding:"required"`
	CategoryID uuid.UUID `json:"categoryId" binding:"required"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name       *string    `json:"name,omitempty"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
