package models

import (
	"time"

	"github.com/google/uuid"
)

// Sale is a single recorded transaction. Price and TotalAmount are stored as
// decimal strings (numeric columns) to avoid floating point drift; the raw
// CSV value is preserved verbatim on import. Sales are append-only: uploading
// the same file twice creates two sales per row, there is no dedup key.
type Sale struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID       uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	Price         string    `json:"price" gorm:"type:numeric(12,2);not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	TotalAmount   string    `json:"totalAmount" gorm:"type:numeric(12,2);not null"`
	SaleDate      time.Time `json:"saleDate" gorm:"not null;index"`
	Employee      *string   `json:"employee,omitempty"`
	CustomerName  *string   `json:"customerName,omitempty"`
	CustomerEmail *string   `json:"customerEmail,omitempty"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	Status        *string   `json:"status,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// CreateSaleRequest represents a manually recorded sale
type CreateSaleRequest struct {
	ProductID     uuid.UUID `json:"productId" binding:"required"`
	Price         string    `json:"price" binding:"required"`
	Quantity      int       `json:"quantity" binding:"required,min=1"`
	TotalAmount   string    `json:"totalAmount" binding:"required"`
	SaleDate      string    `json:"saleDate" binding:"required"`
	Employee      *string   `json:"employee,omitempty"`
	CustomerName  *string   `json:"customerName,omitempty"`
	CustomerEmail *string   `json:"customerEmail,omitempty"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	Status        *string   `json:"status,omitempty"`
}

// SaleFilters represents filters for querying sales
type SaleFilters struct {
	OwnerID    uuid.UUID
	ProductID  *uuid.UUID
	CategoryID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	Limit      int
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
