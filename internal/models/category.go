package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for one owning user. Names are unique per owner
// and categories are created on demand during CSV ingestion.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID   uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;uniqueIndex:idx_owner_category_name"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_owner_category_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

// CreateCategoryRequest represents a request to create a new category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
