package models

import (
	"time"
)

// BaseModel provides common fields for models with a serial primary key.
// Serial ids double as registration order for listings.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
