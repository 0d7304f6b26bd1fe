package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroceryList struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:200;not null" json:"name"`
	Items     []GroceryItem  `gorm:"foreignKey:ListID" json:"items,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *GroceryList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (GroceryList) TableName() string {
	return "grocery_lists"
}

type GroceryItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ListID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"list_id"`
	Name      string         `gorm:"size:200;not null" json:"name"`
	Quantity  float64        `gorm:"default:1" json:"quantity"`
	Unit      string         `gorm:"size:20" json:"unit"`
	Category  string         `gorm:"size:50" json:"category"`
	Checked   bool           `gorm:"default:false" json:"checked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (i *GroceryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (GroceryItem) TableName() string {
	return "grocery_items"
}
