package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogFood is one row of the static mock food database the search page
// queries. Seeded by cmd/seed_foods; not user-editable.
type CatalogFood struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null;index" json:"name"`
	Category    string    `gorm:"size:50;index" json:"category"`
	Calories    float64   `gorm:"not null" json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       float64   `json:"fiber"`
	Sugar       float64   `json:"sugar"`
	Sodium      float64   `json:"sodium"`
	ServingSize string    `gorm:"size:100" json:"serving_size"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f *CatalogFood) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (CatalogFood) TableName() string {
	return "catalog_foods"
}

// CustomFood is a user-defined food, merged into search results alongside
// the catalog.
type CustomFood struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	Category    string         `gorm:"size:50" json:"category"`
	Calories    float64        `gorm:"not null" json:"calories"`
	Protein     float64        `json:"protein"`
	Carbs       float64        `json:"carbs"`
	Fat         float64        `json:"fat"`
	Fiber       float64        `json:"fiber"`
	Sugar       float64        `json:"sugar"`
	Sodium      float64        `json:"sodium"`
	ServingSize string         `gorm:"size:100" json:"serving_size"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (f *CustomFood) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (CustomFood) TableName() string {
	return "custom_foods"
}
