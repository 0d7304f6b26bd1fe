package types

import "github.com/google/uuid"

// FoodResult is one row of a food search response. Catalog foods and the
// user's custom foods share this shape; Custom marks the source.
type FoodResult struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       float64   `json:"fiber"`
	Sugar       float64   `json:"sugar"`
	Sodium      float64   `json:"sodium"`
	ServingSize string    `json:"serving_size"`
	Custom      bool      `json:"custom"`
}
