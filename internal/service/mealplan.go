package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/types"
)

// MealPlanService manages planned meals. TotalCalories is always derived from
// the food snapshots, never taken from the client.
type MealPlanService struct {
	db *gorm.DB
}

var _ IMealPlanService = (*MealPlanService)(nil)

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

func (s *MealPlanService) CreateMealPlan(ctx context.Context, userID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error) {
	planDate, err := time.Parse(dateLayout, req.PlanDate)
	if err != nil {
		return nil, err
	}

	foods := plannedFoods(req.Foods)
	plan := models.MealPlan{
		UserID:        userID,
		PlanName:      req.PlanName,
		PlanDate:      planDate,
		MealType:      req.MealType,
		Foods:         foods,
		TotalCalories: totalCalories(foods),
		PrepTimeMin:   req.PrepTimeMin,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) GetMealPlan(ctx context.Context, userID, planID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) UpdateMealPlan(ctx context.Context, userID, planID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
		return nil, err
	}

	planDate, err := time.Parse(dateLayout, req.PlanDate)
	if err != nil {
		return nil, err
	}

	foods := plannedFoods(req.Foods)
	plan.PlanName = req.PlanName
	plan.PlanDate = planDate
	plan.MealType = req.MealType
	plan.Foods = foods
	plan.TotalCalories = totalCalories(foods)
	plan.PrepTimeMin = req.PrepTimeMin

	if err := s.db.WithContext(ctx).Save(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) DeleteMealPlan(ctx context.Context, userID, planID uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", planID, userID).Delete(&models.MealPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListMealPlans returns the user's plans, optionally filtered to one date.
func (s *MealPlanService) ListMealPlans(ctx context.Context, userID uuid.UUID, date *time.Time) ([]models.MealPlan, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != nil {
		query = query.Where("plan_date = ?", dateOnly(*date))
	}

	var plans []models.MealPlan
	err := query.Order("plan_date ASC, created_at ASC").Find(&plans).Error
	return plans, err
}

func plannedFoods(reqs []types.PlannedFoodRequest) []models.PlannedFood {
	foods := make([]models.PlannedFood, len(reqs))
	for i, f := range reqs {
		foods[i] = models.PlannedFood{
			Name:        f.Name,
			Calories:    f.Calories,
			Protein:     f.Protein,
			Carbs:       f.Carbs,
			Fat:         f.Fat,
			ServingSize: f.ServingSize,
			PrepTimeMin: f.PrepTimeMin,
		}
	}
	return foods
}

func totalCalories(foods []models.PlannedFood) float64 {
	var total float64
	for _, f := range foods {
		total += f.Calories
	}
	return total
}
