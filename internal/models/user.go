package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile holds everything the onboarding and settings forms collect:
// demographics for the calorie calculator, goals, hydration target, and
// dietary preferences for the meal planner.
type UserProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name          string    `gorm:"size:100" json:"name"`
	Age           int       `json:"age"`
	Gender        string    `gorm:"size:10" json:"gender"`
	HeightCM      float64   `json:"height_cm"`
	WeightKG      float64   `json:"current_weight_kg"`
	GoalWeightKG  *float64  `json:"goal_weight_kg,omitempty"`
	GoalType      string    `gorm:"size:20" json:"goal_type"`
	ActivityLevel string    `gorm:"size:20" json:"activity_level"`

	// DailyCalorieGoal is derived; profile saves recompute it and persist
	// only when the value changed.
	DailyCalorieGoal int `json:"daily_calorie_goal"`
	WaterGoalML      int `gorm:"default:2000" json:"water_goal_ml"`

	DietType           string   `gorm:"size:30" json:"diet_type"`
	Allergies          []string `gorm:"serializer:json" json:"allergies"`
	AvoidFoods         string   `gorm:"type:text" json:"avoid_foods"`
	MealsPerDay        int      `gorm:"default:3" json:"meals_per_day"`
	SnacksPerDay       int      `gorm:"default:1" json:"snacks_per_day"`
	PrepTimePreference string   `gorm:"size:20" json:"prep_time_preference"`
	CookingSkillLevel  string   `gorm:"size:20" json:"cooking_skill_level"`
	BudgetPreference   string   `gorm:"size:20" json:"budget_preference"`

	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
