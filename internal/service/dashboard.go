package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/nutrition"
	"github.com/nutriplan/backend/internal/types"
)

// DashboardService derives the dashboard summary and the progress report from
// the raw logs. It never writes; all numbers are computed on read.
type DashboardService struct {
	db *gorm.DB
}

var _ IDashboardService = (*DashboardService)(nil)

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Summary builds the daily dashboard: macro totals and percents against the
// calorie goal, plus the hydration card with time-of-day buckets.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID, date time.Time) (*types.DashboardSummary, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	var foodEntries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, dateOnly(date)).
		Find(&foodEntries).Error; err != nil {
		return nil, err
	}

	var intakes []models.WaterIntake
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, dateOnly(date)).
		Find(&intakes).Error; err != nil {
		return nil, err
	}

	totals := nutrition.SumDay(macroEntries(foodEntries), date)

	var totalML float64
	waterEntries := make([]nutrition.WaterEntry, len(intakes))
	for i, intake := range intakes {
		totalML += intake.AmountML
		waterEntries[i] = nutrition.WaterEntry{
			AmountML:  intake.AmountML,
			CreatedAt: intake.CreatedAt,
		}
	}

	return &types.DashboardSummary{
		Date:           date.Format(dateLayout),
		Totals:         totals,
		MacroPercents:  totals.Percents(),
		CalorieGoal:    profile.DailyCalorieGoal,
		CaloriePercent: nutrition.ProgressPercent(totals.Calories, float64(profile.DailyCalorieGoal)),
		Water: types.WaterSummary{
			TotalML:     totalML,
			TotalOz:     nutrition.MLToOz(totalML),
			GoalML:      profile.WaterGoalML,
			Percent:     nutrition.ProgressPercent(totalML, float64(profile.WaterGoalML)),
			ByTimeOfDay: nutrition.BucketWaterByTime(waterEntries, float64(profile.WaterGoalML), time.UTC),
		},
	}, nil
}

// Progress builds the report for a date range: the weight chart, goal
// progress, and the per-day calorie chart.
func (s *DashboardService) Progress(ctx context.Context, userID uuid.UUID, from, to time.Time) (*types.ProgressReport, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	var weights []models.WeightEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, dateOnly(from), dateOnly(to)).
		Order("entry_date ASC").
		Find(&weights).Error; err != nil {
		return nil, err
	}

	var foodEntries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, dateOnly(from), dateOnly(to)).
		Find(&foodEntries).Error; err != nil {
		return nil, err
	}

	weightPoints := make([]types.WeightPointResponse, len(weights))
	series := make([]nutrition.WeightPoint, len(weights))
	for i, w := range weights {
		weightPoints[i] = types.WeightPointResponse{
			Date:     w.EntryDate.Format(dateLayout),
			WeightKG: w.WeightKG,
			Notes:    w.Notes,
		}
		series[i] = nutrition.WeightPoint{
			Date:     w.EntryDate,
			WeightKG: w.WeightKG,
		}
	}

	var targetKG float64
	if profile.GoalWeightKG != nil {
		targetKG = *profile.GoalWeightKG
	}

	entries := macroEntries(foodEntries)

	return &types.ProgressReport{
		From:          from.Format(dateLayout),
		To:            to.Format(dateLayout),
		Weights:       weightPoints,
		GoalProgress:  nutrition.EvaluateGoalProgress(series, nutrition.GoalType(profile.GoalType), targetKG),
		DailyCalories: dailyCalories(entries, from, to),
		RangeTotals:   nutrition.SumRange(entries, from, to),
	}, nil
}

func macroEntries(entries []models.FoodEntry) []nutrition.MacroEntry {
	result := make([]nutrition.MacroEntry, len(entries))
	for i, e := range entries {
		result[i] = nutrition.MacroEntry{
			Date:     e.EntryDate,
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fat:      e.Fat,
			Fiber:    e.Fiber,
			Sugar:    e.Sugar,
			Sodium:   e.Sodium,
		}
	}
	return result
}

// dailyCalories walks the range one day at a time so the chart gets a point
// for every day, zero on days with no entries.
func dailyCalories(entries []nutrition.MacroEntry, from, to time.Time) []types.DailyCalories {
	var days []types.DailyCalories
	for day := dateOnly(from); !day.After(dateOnly(to)); day = day.AddDate(0, 0, 1) {
		totals := nutrition.SumDay(entries, day)
		days = append(days, types.DailyCalories{
			Date:     day.Format(dateLayout),
			Calories: totals.Calories,
		})
	}
	return days
}
