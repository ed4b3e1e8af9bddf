package models

import (
	"time"
)

// Band model for the /v1/band resource
type Band struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"size:500" json:"description"`
	Image       *string   `gorm:"size:255" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Band) TableName() string {
	return "band"
}
