package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Customer is a buyer record scoped to one owning user, resolved by email
// when sales carry customer metadata.
type Customer struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID   uuid.UUID      `json:"ownerId" gorm:"type:uuid;not null;uniqueIndex:idx_owner_customer_email"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex:idx_owner_customer_email"`
	Name      string         `json:"name"`
	Phone     *string        `json:"phone,omitempty"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	Email string   `json:"email" binding:"required,email"`
	Name  string   `json:"name"`
	Phone *string  `json:"phone,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
