package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodEntry is a single logged food consumption record.
type FoodEntry struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FoodName    string         `gorm:"size:200;not null" json:"food_name"`
	Calories    float64        `gorm:"not null" json:"calories"`
	Protein     float64        `json:"protein"`
	Carbs       float64        `json:"carbs"`
	Fat         float64        `json:"fat"`
	Fiber       float64        `json:"fiber"`
	Sugar       float64        `json:"sugar"`
	Sodium      float64        `json:"sodium"`
	MealType    string         `gorm:"size:20;not null" json:"meal_type"`
	ServingSize *string        `gorm:"size:100" json:"serving_size,omitempty"`
	EntryDate   time.Time      `gorm:"not null;index" json:"entry_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (FoodEntry) TableName() string {
	return "food_entries"
}

// WaterIntake is one hydration log record. CreatedAt doubles as the timestamp
// the dashboard's time buckets classify on.
type WaterIntake struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	AmountML  float64        `gorm:"not null" json:"amount_ml"`
	EntryDate time.Time      `gorm:"not null;index" json:"entry_date"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (w *WaterIntake) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (WaterIntake) TableName() string {
	return "water_intakes"
}

// WeightEntry is one point of the weight time series the progress page charts.
type WeightEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	WeightKG  float64        `gorm:"not null" json:"weight_kg"`
	EntryDate time.Time      `gorm:"not null;index" json:"entry_date"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (w *WeightEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (WeightEntry) TableName() string {
	return "weight_entries"
}
