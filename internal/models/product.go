package models

import "time"

// Product represents a single item in the catalog.
type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Price        float64   `json:"price" validate:"required,gt=0"`
	Availability bool      `json:"availability" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
