package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlannedFood is a snapshot of a food at the moment it was added to a plan.
// Snapshots are embedded so later edits to the catalog or a custom food do
// not rewrite history.
type PlannedFood struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"serving_size,omitempty"`
	PrepTimeMin int     `json:"prep_time_min,omitempty"`
}

// MealPlan is a named set of foods planned for one meal slot on one date.
type MealPlan struct {
	ID       uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanName string        `gorm:"size:200;not null" json:"plan_name"`
	PlanDate time.Time     `gorm:"not null;index" json:"plan_date"`
	MealType string        `gorm:"size:20;not null" json:"meal_type"`
	Foods    []PlannedFood `gorm:"serializer:json" json:"foods"`

	// TotalCalories is derived: recomputed from Foods on every write.
	TotalCalories float64 `json:"total_calories"`
	PrepTimeMin   int     `json:"prep_time_min"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (MealPlan) TableName() string {
	return "meal_plans"
}
