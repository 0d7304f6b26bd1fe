package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/types"
)

const searchLimit = 50

// FoodService serves the shared food catalog and per-user custom foods.
// Search is a case-insensitive keyword match over both sources.
type FoodService struct {
	db *gorm.DB
}

var _ IFoodService = (*FoodService)(nil)

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// SearchFoods matches the query against catalog foods and the user's custom
// foods. Custom foods come first so a user's own entries shadow the catalog.
func (s *FoodService) SearchFoods(ctx context.Context, userID uuid.UUID, query, category string) ([]types.FoodResult, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	customQuery := s.db.WithContext(ctx).Where("user_id = ?", userID)
	catalogQuery := s.db.WithContext(ctx)
	if query != "" {
		customQuery = customQuery.Where("LOWER(name) LIKE ?", pattern)
		catalogQuery = catalogQuery.Where("LOWER(name) LIKE ?", pattern)
	}
	if category != "" {
		customQuery = customQuery.Where("category = ?", category)
		catalogQuery = catalogQuery.Where("category = ?", category)
	}

	var custom []models.CustomFood
	if err := customQuery.Order("name ASC").Limit(searchLimit).Find(&custom).Error; err != nil {
		return nil, err
	}

	var catalog []models.CatalogFood
	if err := catalogQuery.Order("name ASC").Limit(searchLimit).Find(&catalog).Error; err != nil {
		return nil, err
	}

	results := make([]types.FoodResult, 0, len(custom)+len(catalog))
	for _, f := range custom {
		results = append(results, types.FoodResult{
			ID:          f.ID,
			Name:        f.Name,
			Category:    f.Category,
			Calories:    f.Calories,
			Protein:     f.Protein,
			Carbs:       f.Carbs,
			Fat:         f.Fat,
			Fiber:       f.Fiber,
			Sugar:       f.Sugar,
			Sodium:      f.Sodium,
			ServingSize: f.ServingSize,
			Custom:      true,
		})
	}
	for _, f := range catalog {
		results = append(results, types.FoodResult{
			ID:          f.ID,
			Name:        f.Name,
			Category:    f.Category,
			Calories:    f.Calories,
			Protein:     f.Protein,
			Carbs:       f.Carbs,
			Fat:         f.Fat,
			Fiber:       f.Fiber,
			Sugar:       f.Sugar,
			Sodium:      f.Sodium,
			ServingSize: f.ServingSize,
		})
	}
	return results, nil
}

// ListCategories returns the distinct catalog categories.
func (s *FoodService) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.WithContext(ctx).
		Model(&models.CatalogFood{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (s *FoodService) CreateCustomFood(ctx context.Context, userID uuid.UUID, req *types.CreateCustomFoodRequest) (*models.CustomFood, error) {
	food := models.CustomFood{
		UserID:      userID,
		Name:        req.Name,
		Category:    req.Category,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		Sodium:      req.Sodium,
		ServingSize: req.ServingSize,
	}
	if err := s.db.WithContext(ctx).Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) UpdateCustomFood(ctx context.Context, userID, foodID uuid.UUID, req *types.CreateCustomFoodRequest) (*models.CustomFood, error) {
	var food models.CustomFood
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", foodID, userID).First(&food).Error; err != nil {
		return nil, err
	}

	food.Name = req.Name
	food.Category = req.Category
	food.Calories = req.Calories
	food.Protein = req.Protein
	food.Carbs = req.Carbs
	food.Fat = req.Fat
	food.Fiber = req.Fiber
	food.Sugar = req.Sugar
	food.Sodium = req.Sodium
	food.ServingSize = req.ServingSize

	if err := s.db.WithContext(ctx).Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) DeleteCustomFood(ctx context.Context, userID, foodID uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", foodID, userID).Delete(&models.CustomFood{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *FoodService) ListCustomFoods(ctx context.Context, userID uuid.UUID) ([]models.CustomFood, error) {
	var foods []models.CustomFood
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&foods).Error
	return foods, err
}
