package models

import (
	"time"

	"github.com/google/uuid"
)

// Business holds the tenant identity and report branding for one owner.
// It is created with defaults on first use and stamped onto PDF reports.
type Business struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID    uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;uniqueIndex"`
	Name       string    `json:"name" gorm:"not null"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Website    string    `json:"website"`
	Currency   string    `json:"currency" gorm:"default:'USD'"`
	FooterText string    `json:"footerText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UpdateBusinessRequest represents a partial business profile update
type UpdateBusinessRequest struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Website    *string `json:"website,omitempty"`
	Currency   *string `json:"currency,omitempty"`
	FooterText *string `json:"footerText,omitempty"`
}

// TableName returns the table name for the Business model
func (Business) TableName() string {
	return "businesses"
}
