package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/types"
)

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for user profile operations.
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
	SetAvatarURL(ctx context.Context, userID uuid.UUID, url string) error
}

// ITrackingService covers the food, water, and weight logs.
type ITrackingService interface {
	CreateFoodEntry(ctx context.Context, userID uuid.UUID, req *types.CreateFoodEntryRequest) (*models.FoodEntry, error)
	UpdateFoodEntry(ctx context.Context, userID, entryID uuid.UUID, req *types.CreateFoodEntryRequest) (*models.FoodEntry, error)
	DeleteFoodEntry(ctx context.Context, userID, entryID uuid.UUID) error
	ListFoodEntries(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.FoodEntry, error)

	CreateWaterIntake(ctx context.Context, userID uuid.UUID, req *types.CreateWaterIntakeRequest) (*models.WaterIntake, error)
	DeleteWaterIntake(ctx context.Context, userID, intakeID uuid.UUID) error
	ListWaterIntakes(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.WaterIntake, error)

	CreateWeightEntry(ctx context.Context, userID uuid.UUID, req *types.CreateWeightEntryRequest) (*models.WeightEntry, error)
	DeleteWeightEntry(ctx context.Context, userID, entryID uuid.UUID) error
	ListWeightEntries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.WeightEntry, error)
}

// IMealPlanService defines the interface for meal plan operations.
type IMealPlanService interface {
	CreateMealPlan(ctx context.Context, userID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error)
	GetMealPlan(ctx context.Context, userID, planID uuid.UUID) (*models.MealPlan, error)
	UpdateMealPlan(ctx context.Context, userID, planID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error)
	DeleteMealPlan(ctx context.Context, userID, planID uuid.UUID) error
	ListMealPlans(ctx context.Context, userID uuid.UUID, date *time.Time) ([]models.MealPlan, error)
}

// IFoodService covers catalog search and user-defined custom foods.
type IFoodService interface {
	SearchFoods(ctx context.Context, userID uuid.UUID, query, category string) ([]types.FoodResult, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateCustomFood(ctx context.Context, userID uuid.UUID, req *types.CreateCustomFoodRequest) (*models.CustomFood, error)
	UpdateCustomFood(ctx context.Context, userID, foodID uuid.UUID, req *types.CreateCustomFoodRequest) (*models.CustomFood, error)
	DeleteCustomFood(ctx context.Context, userID, foodID uuid.UUID) error
	ListCustomFoods(ctx context.Context, userID uuid.UUID) ([]models.CustomFood, error)
}

// IGroceryService defines the interface for grocery list operations.
type IGroceryService interface {
	CreateList(ctx context.Context, userID uuid.UUID, name string) (*models.GroceryList, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*models.GroceryList, error)
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error
	ListLists(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error)
	AddItem(ctx context.Context, userID, listID uuid.UUID, req *types.CreateGroceryItemRequest) (*models.GroceryItem, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req *types.UpdateGroceryItemRequest) (*models.GroceryItem, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
	ItemsByCategory(ctx context.Context, userID, listID uuid.UUID) (map[string][]models.GroceryItem, error)
}

// IInventoryService defines the interface for kitchen inventory operations.
type IInventoryService interface {
	CreateItem(ctx context.Context, userID uuid.UUID, req *types.CreateInventoryItemRequest) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req *types.CreateInventoryItemRequest) (*models.InventoryItem, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.InventoryItem, error)
}

// IDashboardService derives the dashboard and progress numbers from the logs.
type IDashboardService interface {
	Summary(ctx context.Context, userID uuid.UUID, date time.Time) (*types.DashboardSummary, error)
	Progress(ctx context.Context, userID uuid.UUID, from, to time.Time) (*types.ProgressReport, error)
}

// IEmailService defines the interface for email operations.
type IEmailService interface {
	SendEmail(to, subject, body string) error
	SendWelcomeEmail(user *models.User) error
}
