package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/types"
)

const dateLayout = "2006-01-02"

// TrackingService owns the three daily logs: food, water, and weight. Every
// query is scoped to the owning user.
type TrackingService struct {
	db *gorm.DB
}

var _ ITrackingService = (*TrackingService)(nil)

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{db: db}
}

func (s *TrackingService) CreateFoodEntry(ctx context.Context, userID uuid.UUID, req *types.CreateFoodEntryRequest) (*models.FoodEntry, error) {
	entryDate, err := time.Parse(dateLayout, req.EntryDate)
	if err != nil {
		return nil, err
	}

	entry := models.FoodEntry{
		UserID:      userID,
		FoodName:    req.FoodName,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		Sodium:      req.Sodium,
		MealType:    req.MealType,
		ServingSize: req.ServingSize,
		EntryDate:   entryDate,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *TrackingService) UpdateFoodEntry(ctx context.Context, userID, entryID uuid.UUID, req *types.CreateFoodEntryRequest) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return nil, err
	}

	entryDate, err := time.Parse(dateLayout, req.EntryDate)
	if err != nil {
		return nil, err
	}

	entry.FoodName = req.FoodName
	entry.Calories = req.Calories
	entry.Protein = req.Protein
	entry.Carbs = req.Carbs
	entry.Fat = req.Fat
	entry.Fiber = req.Fiber
	entry.Sugar = req.Sugar
	entry.Sodium = req.Sodium
	entry.MealType = req.MealType
	entry.ServingSize = req.ServingSize
	entry.EntryDate = entryDate

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *TrackingService) DeleteFoodEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.FoodEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *TrackingService) ListFoodEntries(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, dateOnly(date)).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *TrackingService) CreateWaterIntake(ctx context.Context, userID uuid.UUID, req *types.CreateWaterIntakeRequest) (*models.WaterIntake, error) {
	entryDate, err := time.Parse(dateLayout, req.EntryDate)
	if err != nil {
		return nil, err
	}

	intake := models.WaterIntake{
		UserID:    userID,
		AmountML:  req.AmountML,
		EntryDate: entryDate,
	}
	if err := s.db.WithContext(ctx).Create(&intake).Error; err != nil {
		return nil, err
	}
	return &intake, nil
}

func (s *TrackingService) DeleteWaterIntake(ctx context.Context, userID, intakeID uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", intakeID, userID).Delete(&models.WaterIntake{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *TrackingService) ListWaterIntakes(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.WaterIntake, error) {
	var intakes []models.WaterIntake
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, dateOnly(date)).
		Order("created_at ASC").
		Find(&intakes).Error
	return intakes, err
}

func (s *TrackingService) CreateWeightEntry(ctx context.Context, userID uuid.UUID, req *types.CreateWeightEntryRequest) (*models.WeightEntry, error) {
	entryDate, err := time.Parse(dateLayout, req.EntryDate)
	if err != nil {
		return nil, err
	}

	entry := models.WeightEntry{
		UserID:    userID,
		WeightKG:  req.WeightKG,
		EntryDate: entryDate,
		Notes:     req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *TrackingService) DeleteWeightEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.WeightEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *TrackingService) ListWeightEntries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, dateOnly(from), dateOnly(to)).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
