package types

import (
	"github.com/nutriplan/backend/internal/nutrition"
)

// WaterSummary is the hydration card of the dashboard.
type WaterSummary struct {
	TotalML     float64                `json:"total_ml"`
	TotalOz     int                    `json:"total_oz"`
	GoalML      int                    `json:"goal_ml"`
	Percent     int                    `json:"percent"`
	ByTimeOfDay []nutrition.BucketFill `json:"by_time_of_day"`
}

// DashboardSummary is the response for GET /dashboard/summary.
type DashboardSummary struct {
	Date           string                  `json:"date"`
	Totals         nutrition.Totals        `json:"totals"`
	MacroPercents  nutrition.MacroPercents `json:"macro_percents"`
	CalorieGoal    int                     `json:"calorie_goal"`
	CaloriePercent int                     `json:"calorie_percent"`
	Water          WaterSummary            `json:"water"`
}

// DailyCalories is one point of the progress page's calorie chart.
type DailyCalories struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

// WeightPointResponse is one point of the progress page's weight chart.
type WeightPointResponse struct {
	Date     string  `json:"date"`
	WeightKG float64 `json:"weight_kg"`
	Notes    string  `json:"notes,omitempty"`
}

// ProgressReport is the response for GET /progress.
type ProgressReport struct {
	From          string                 `json:"from"`
	To            string                 `json:"to"`
	Weights       []WeightPointResponse  `json:"weights"`
	GoalProgress  nutrition.GoalProgress `json:"goal_progress"`
	DailyCalories []DailyCalories        `json:"daily_calories"`
	RangeTotals   nutrition.Totals       `json:"range_totals"`
}
