package models

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string     `gorm:"not null;size:255" json:"name"`
	Category     *string    `gorm:"size:100" json:"category,omitempty"`
	Quantity     float64    `gorm:"not null;default:0" json:"quantity"`
	Unit         string     `gorm:"not null;size:30" json:"unit"`
	ExpiryDate   *time.Time `gorm:"type:date" json:"expiry_date"`
	MinimumStock float64    `gorm:"not null;default:0" json:"minimum_stock"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (FoodItem) TableName() string {
	return "food_inventory"
}

type MedicineItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string     `gorm:"not null;size:255" json:"name"`
	BatchNumber  *string    `gorm:"size:100" json:"batch_number,omitempty"`
	Manufacturer *string    `gorm:"size:255" json:"manufacturer,omitempty"`
	Quantity     float64    `gorm:"not null;default:0" json:"quantity"`
	Unit         string     `gorm:"not null;size:30" json:"unit"`
	ExpiryDate   *time.Time `gorm:"type:date" json:"expiry_date"`
	MinimumStock float64    `gorm:"not null;default:0" json:"minimum_stock"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (MedicineItem) TableName() string {
	return "medicine_inventory"
}
