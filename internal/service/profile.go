package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/nutrition"
	"github.com/nutriplan/backend/internal/types"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the provided fields and recomputes the daily calorie
// goal whenever the profile has enough data for the formula. Repeating the
// same request leaves the row unchanged.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.HeightCM != nil {
		profile.HeightCM = *req.HeightCM
	}
	if req.WeightKG != nil {
		profile.WeightKG = *req.WeightKG
	}
	if req.GoalWeightKG != nil {
		profile.GoalWeightKG = req.GoalWeightKG
	}
	if req.GoalType != nil {
		profile.GoalType = *req.GoalType
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}
	if req.WaterGoalML != nil {
		profile.WaterGoalML = *req.WaterGoalML
	}
	if req.DietType != nil {
		profile.DietType = *req.DietType
	}
	if req.Allergies != nil {
		profile.Allergies = *req.Allergies
	}
	if req.AvoidFoods != nil {
		profile.AvoidFoods = *req.AvoidFoods
	}
	if req.MealsPerDay != nil {
		profile.MealsPerDay = *req.MealsPerDay
	}
	if req.SnacksPerDay != nil {
		profile.SnacksPerDay = *req.SnacksPerDay
	}
	if req.PrepTimePreference != nil {
		profile.PrepTimePreference = *req.PrepTimePreference
	}
	if req.CookingSkillLevel != nil {
		profile.CookingSkillLevel = *req.CookingSkillLevel
	}
	if req.BudgetPreference != nil {
		profile.BudgetPreference = *req.BudgetPreference
	}

	if goal, ok := nutrition.CalorieGoal(profileSubject(&profile)); ok {
		profile.DailyCalorieGoal = goal
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

// SetAvatarURL stores the uploaded avatar location.
func (s *ProfileService) SetAvatarURL(ctx context.Context, userID uuid.UUID, url string) error {
	return s.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("avatar_url", url).Error
}

func profileSubject(p *models.UserProfile) nutrition.Subject {
	return nutrition.Subject{
		Age:           p.Age,
		Gender:        nutrition.Gender(p.Gender),
		HeightCM:      p.HeightCM,
		WeightKG:      p.WeightKG,
		ActivityLevel: nutrition.ActivityLevel(p.ActivityLevel),
		GoalType:      nutrition.GoalType(p.GoalType),
	}
}
