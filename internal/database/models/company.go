package models

import (
	"time"
)

// Company represents the tenant. It is created implicitly by the first
// registration under a new company_id and is never updated afterwards.
type Company struct {
	CompanyID string    `json:"company_id" gorm:"primaryKey;size:100" validate:"required,max=100"`
	Name      string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:CompanyID;references:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
