package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/nutrition"
)

func setCalorieAndWaterGoals(t *testing.T, db *gorm.DB, userID uuid.UUID, calorieGoal, waterGoalML int) {
	t.Helper()
	err := db.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"daily_calorie_goal": calorieGoal,
			"water_goal_ml":      waterGoalML,
		}).Error
	require.NoError(t, err)
}

func TestDashboardSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)
	setCalorieAndWaterGoals(t, db, userID, 2000, 2000)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.FoodEntry{
		{UserID: userID, FoodName: "Breakfast", Calories: 500, Protein: 25, Carbs: 25, Fat: 10, MealType: "breakfast", EntryDate: day},
		{UserID: userID, FoodName: "Lunch", Calories: 500, Protein: 25, Carbs: 25, Fat: 10, MealType: "lunch", EntryDate: day},
	}
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}

	intakes := []models.WaterIntake{
		{UserID: userID, AmountML: 600, EntryDate: day, CreatedAt: day.Add(7 * time.Hour)},
		{UserID: userID, AmountML: 400, EntryDate: day, CreatedAt: day.Add(13 * time.Hour)},
	}
	for i := range intakes {
		require.NoError(t, db.Create(&intakes[i]).Error)
	}

	summary, err := svc.Summary(ctx, userID, day)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", summary.Date)
	assert.Equal(t, 1000.0, summary.Totals.Calories)
	assert.Equal(t, 50, summary.CaloriePercent)
	assert.Equal(t, nutrition.MacroPercents{Protein: 34, Carbs: 34, Fat: 31}, summary.MacroPercents)

	assert.Equal(t, 1000.0, summary.Water.TotalML)
	assert.Equal(t, 34, summary.Water.TotalOz)
	assert.Equal(t, 50, summary.Water.Percent)

	require.Len(t, summary.Water.ByTimeOfDay, 6)
	assert.Equal(t, 600.0, summary.Water.ByTimeOfDay[0].TotalML)
	assert.Equal(t, 400.0, summary.Water.ByTimeOfDay[2].TotalML)
}

func TestDashboardSummaryEmptyDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)
	userID := createTestUser(t, db)
	setCalorieAndWaterGoals(t, db, userID, 2000, 2000)

	summary, err := svc.Summary(context.Background(), userID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Zero(t, summary.Totals.Calories)
	assert.Zero(t, summary.CaloriePercent)
	assert.Equal(t, nutrition.MacroPercents{}, summary.MacroPercents)
	assert.Zero(t, summary.Water.Percent)
}

func TestProgressReport(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	target := 70.0
	err := db.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"goal_type":      "lose_weight",
			"goal_weight_kg": target,
		}).Error
	require.NoError(t, err)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	weights := []models.WeightEntry{
		{UserID: userID, WeightKG: 80, EntryDate: from},
		{UserID: userID, WeightKG: 75, EntryDate: to},
	}
	for i := range weights {
		require.NoError(t, db.Create(&weights[i]).Error)
	}

	entries := []models.FoodEntry{
		{UserID: userID, FoodName: "Day 1", Calories: 1800, MealType: "dinner", EntryDate: from},
		{UserID: userID, FoodName: "Day 3", Calories: 1600, MealType: "dinner", EntryDate: to},
	}
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}

	report, err := svc.Progress(ctx, userID, from, to)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", report.From)
	assert.Equal(t, "2024-03-03", report.To)
	require.Len(t, report.Weights, 2)

	// Halfway from 80 to 70
	assert.Equal(t, 50, report.GoalProgress.Percent)
	assert.Equal(t, nutrition.StatusInProgress, report.GoalProgress.Status)

	// One point per day, zero on the quiet day
	require.Len(t, report.DailyCalories, 3)
	assert.Equal(t, 1800.0, report.DailyCalories[0].Calories)
	assert.Equal(t, 0.0, report.DailyCalories[1].Calories)
	assert.Equal(t, 1600.0, report.DailyCalories[2].Calories)

	assert.Equal(t, 3400.0, report.RangeTotals.Calories)
}

func TestProgressReportNoWeightEntries(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)
	userID := createTestUser(t, db)

	err := db.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"goal_type":      "lose_weight",
			"goal_weight_kg": 70.0,
		}).Error
	require.NoError(t, err)

	report, err := svc.Progress(context.Background(), userID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, nutrition.StatusNoEntries, report.GoalProgress.Status)
	assert.Empty(t, report.Weights)
}
