package types

import "github.com/google/uuid"

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token back to the client.
type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
}

// UpdateProfileRequest is the body for PUT /profile. Pointer fields
// distinguish "not sent" from zero so partial saves from the onboarding and
// settings forms don't wipe other fields.
type UpdateProfileRequest struct {
	Name          *string  `json:"name,omitempty"`
	Age           *int     `json:"age,omitempty" binding:"omitempty,gte=18,lte=100"`
	Gender        *string  `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	HeightCM      *float64 `json:"height_cm,omitempty" binding:"omitempty,gt=0"`
	WeightKG      *float64 `json:"current_weight_kg,omitempty" binding:"omitempty,gt=0"`
	GoalWeightKG  *float64 `json:"goal_weight_kg,omitempty" binding:"omitempty,gt=0"`
	GoalType      *string  `json:"goal_type,omitempty" binding:"omitempty,oneof=lose_weight maintain_weight gain_weight"`
	ActivityLevel *string  `json:"activity_level,omitempty" binding:"omitempty,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	WaterGoalML   *int     `json:"water_goal_ml,omitempty" binding:"omitempty,gt=0"`

	DietType           *string   `json:"diet_type,omitempty"`
	Allergies          *[]string `json:"allergies,omitempty"`
	AvoidFoods         *string   `json:"avoid_foods,omitempty"`
	MealsPerDay        *int      `json:"meals_per_day,omitempty" binding:"omitempty,gte=1,lte=6"`
	SnacksPerDay       *int      `json:"snacks_per_day,omitempty" binding:"omitempty,gte=0,lte=6"`
	PrepTimePreference *string   `json:"prep_time_preference,omitempty"`
	CookingSkillLevel  *string   `json:"cooking_skill_level,omitempty"`
	BudgetPreference   *string   `json:"budget_preference,omitempty"`
}

// CreateFoodEntryRequest is the body for POST /food-entries and PUT
// /food-entries/:id. EntryDate is YYYY-MM-DD.
type CreateFoodEntryRequest struct {
	FoodName    string  `json:"food_name" binding:"required"`
	Calories    float64 `json:"calories" binding:"required,gt=0"`
	Protein     float64 `json:"protein" binding:"gte=0"`
	Carbs       float64 `json:"carbs" binding:"gte=0"`
	Fat         float64 `json:"fat" binding:"gte=0"`
	Fiber       float64 `json:"fiber" binding:"gte=0"`
	Sugar       float64 `json:"sugar" binding:"gte=0"`
	Sodium      float64 `json:"sodium" binding:"gte=0"`
	MealType    string  `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	ServingSize *string `json:"serving_size,omitempty"`
	EntryDate   string  `json:"entry_date" binding:"required,datetime=2006-01-02"`
}

// CreateWaterIntakeRequest is the body for POST /water-intakes.
type CreateWaterIntakeRequest struct {
	AmountML  float64 `json:"amount_ml" binding:"required,gt=0"`
	EntryDate string  `json:"entry_date" binding:"required,datetime=2006-01-02"`
}

// CreateWeightEntryRequest is the body for POST /weight-entries.
type CreateWeightEntryRequest struct {
	WeightKG  float64 `json:"weight_kg" binding:"required,gt=0"`
	EntryDate string  `json:"entry_date" binding:"required,datetime=2006-01-02"`
	Notes     string  `json:"notes"`
}

// PlannedFoodRequest is one food snapshot inside a meal plan write.
type PlannedFoodRequest struct {
	Name        string  `json:"name" binding:"required"`
	Calories    float64 `json:"calories" binding:"gte=0"`
	Protein     float64 `json:"protein" binding:"gte=0"`
	Carbs       float64 `json:"carbs" binding:"gte=0"`
	Fat         float64 `json:"fat" binding:"gte=0"`
	ServingSize string  `json:"serving_size"`
	PrepTimeMin int     `json:"prep_time_min" binding:"gte=0"`
}

// CreateMealPlanRequest is the body for POST /meal-plans and PUT
// /meal-plans/:id. TotalCalories is never accepted from the client; it is
// derived from Foods on every write.
type CreateMealPlanRequest struct {
	PlanName    string               `json:"plan_name" binding:"required"`
	PlanDate    string               `json:"plan_date" binding:"required,datetime=2006-01-02"`
	MealType    string               `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Foods       []PlannedFoodRequest `json:"foods" binding:"required,min=1,dive"`
	PrepTimeMin int                  `json:"prep_time_min" binding:"gte=0"`
}

// CreateCustomFoodRequest is the body for POST /foods/custom.
type CreateCustomFoodRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Calories    float64 `json:"calories" binding:"required,gt=0"`
	Protein     float64 `json:"protein" binding:"gte=0"`
	Carbs       float64 `json:"carbs" binding:"gte=0"`
	Fat         float64 `json:"fat" binding:"gte=0"`
	Fiber       float64 `json:"fiber" binding:"gte=0"`
	Sugar       float64 `json:"sugar" binding:"gte=0"`
	Sodium      float64 `json:"sodium" binding:"gte=0"`
	ServingSize string  `json:"serving_size"`
}

// CreateGroceryListRequest is the body for POST /grocery-lists.
type CreateGroceryListRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateGroceryItemRequest is the body for POST /grocery-lists/:id/items.
type CreateGroceryItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// UpdateGroceryItemRequest is the body for PUT /grocery-items/:id.
type UpdateGroceryItemRequest struct {
	Name     *string  `json:"name,omitempty"`
	Quantity *float64 `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	Unit     *string  `json:"unit,omitempty"`
	Category *string  `json:"category,omitempty"`
	Checked  *bool    `json:"checked,omitempty"`
}

// CreateInventoryItemRequest is the body for POST /inventory-items and PUT
// /inventory-items/:id.
type CreateInventoryItemRequest struct {
	Name       string  `json:"name" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"gte=0"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	ExpiryDate *string `json:"expiry_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
