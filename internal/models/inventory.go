package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem is something the user has on hand in their kitchen.
type InventoryItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string         `gorm:"size:200;not null" json:"name"`
	Quantity   float64        `gorm:"default:1" json:"quantity"`
	Unit       string         `gorm:"size:20" json:"unit"`
	Category   string         `gorm:"size:50" json:"category"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
