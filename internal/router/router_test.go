package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/api"
	"github.com/nutriplan/backend/internal/database"
	"github.com/nutriplan/backend/internal/service"
)

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	authService := service.NewAuthService(db, nil, "test-secret")
	emailService := service.NewEmailService(&config.Config{})

	handlers := Handlers{
		Auth:      api.NewAuthHandler(authService, emailService),
		Profile:   api.NewProfileHandler(service.NewProfileService(db), nil),
		Tracking:  api.NewTrackingHandler(service.NewTrackingService(db)),
		MealPlan:  api.NewMealPlanHandler(service.NewMealPlanService(db)),
		Food:      api.NewFoodHandler(service.NewFoodService(db)),
		Grocery:   api.NewGroceryHandler(service.NewGroceryService(db)),
		Inventory: api.NewInventoryHandler(service.NewInventoryService(db)),
		Dashboard: api.NewDashboardHandler(service.NewDashboardService(db)),
	}

	return &testApp{
		engine: SetupRouter(handlers, authService, nil),
		db:     db,
	}
}

func (app *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and returns the token.
func (app *testApp) register(t *testing.T, email string) string {
	t.Helper()

	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Short",
		"email":    "short@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateConflict(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "dup@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Again",
		"email":    "dup@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "login@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/v1/profile",
		"/api/v1/food-entries",
		"/api/v1/meal-plans",
		"/api/v1/grocery-lists",
		"/api/v1/inventory-items",
		"/api/v1/dashboard/summary",
		"/api/v1/progress",
	} {
		w := app.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestProfileOnboardingFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "onboard@example.com")

	w := app.request(t, http.MethodPut, "/api/v1/profile", token, gin.H{
		"age":               30,
		"gender":            "male",
		"height_cm":         180,
		"current_weight_kg": 80,
		"activity_level":    "sedentary",
		"goal_type":         "lose_weight",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		DailyCalorieGoal int `json:"daily_calorie_goal"`
		WaterGoalML      int `json:"water_goal_ml"`
	}
	decode(t, w, &profile)
	assert.Equal(t, 1636, profile.DailyCalorieGoal)
	assert.Equal(t, 2000, profile.WaterGoalML)

	w = app.request(t, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileValidationRejectsBadValues(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "validate@example.com")

	w := app.request(t, http.MethodPut, "/api/v1/profile", token, gin.H{"age": 12})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.request(t, http.MethodPut, "/api/v1/profile", token, gin.H{"activity_level": "heroic"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodEntryFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "food@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/food-entries", token, gin.H{
		"food_name":  "Oatmeal",
		"calories":   300,
		"protein":    10,
		"carbs":      50,
		"fat":        5,
		"meal_type":  "breakfast",
		"entry_date": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var entry struct {
		ID string `json:"id"`
	}
	decode(t, w, &entry)

	w = app.request(t, http.MethodGet, "/api/v1/food-entries?date=2024-03-01", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Entries []json.RawMessage `json:"entries"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Entries, 1)

	w = app.request(t, http.MethodDelete, "/api/v1/food-entries/"+entry.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodDelete, "/api/v1/food-entries/"+entry.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoodEntryValidation(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "foodval@example.com")

	// missing calories
	w := app.request(t, http.MethodPost, "/api/v1/food-entries", token, gin.H{
		"food_name":  "Mystery",
		"meal_type":  "lunch",
		"entry_date": "2024-03-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// bad meal type
	w = app.request(t, http.MethodPost, "/api/v1/food-entries", token, gin.H{
		"food_name":  "Oatmeal",
		"calories":   300,
		"meal_type":  "brunch",
		"entry_date": "2024-03-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealPlanFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "plans@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/meal-plans", token, gin.H{
		"plan_name": "Friday dinner",
		"plan_date": "2024-03-01",
		"meal_type": "dinner",
		"foods": []gin.H{
			{"name": "Chicken", "calories": 330},
			{"name": "Rice", "calories": 200},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var plan struct {
		ID            string  `json:"id"`
		TotalCalories float64 `json:"total_calories"`
	}
	decode(t, w, &plan)
	assert.Equal(t, 530.0, plan.TotalCalories)

	w = app.request(t, http.MethodGet, "/api/v1/meal-plans?date=2024-03-01", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodDelete, "/api/v1/meal-plans/"+plan.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMealPlanRequiresFoods(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "emptyplan@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/meal-plans", token, gin.H{
		"plan_name": "Empty",
		"plan_date": "2024-03-01",
		"meal_type": "dinner",
		"foods":     []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroceryFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "grocery@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/grocery-lists", token, gin.H{"name": "Weekly shop"})
	require.Equal(t, http.StatusCreated, w.Code)

	var list struct {
		ID string `json:"id"`
	}
	decode(t, w, &list)

	w = app.request(t, http.MethodPost, "/api/v1/grocery-lists/"+list.ID+"/items", token, gin.H{
		"name":     "Milk",
		"category": "dairy",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var item struct {
		ID string `json:"id"`
	}
	decode(t, w, &item)

	w = app.request(t, http.MethodPut, "/api/v1/grocery-items/"+item.ID, token, gin.H{"checked": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/grocery-lists/"+list.ID+"/by-category", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var grouped struct {
		Categories map[string][]json.RawMessage `json:"categories"`
	}
	decode(t, w, &grouped)
	assert.Len(t, grouped.Categories["dairy"], 1)
}

func TestInventoryFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "inventory@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/inventory-items", token, gin.H{
		"name":        "Greek Yogurt",
		"quantity":    4,
		"unit":        "cups",
		"category":    "dairy",
		"expiry_date": "2024-03-15",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.request(t, http.MethodGet, "/api/v1/inventory-items", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []json.RawMessage `json:"items"`
	}
	decode(t, w, &resp)
	assert.Len(t, resp.Items, 1)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "dash@example.com")

	w := app.request(t, http.MethodPut, "/api/v1/profile", token, gin.H{
		"age":               30,
		"gender":            "male",
		"height_cm":         180,
		"current_weight_kg": 80,
		"activity_level":    "sedentary",
		"goal_type":         "lose_weight",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodPost, "/api/v1/food-entries", token, gin.H{
		"food_name":  "Lunch",
		"calories":   818,
		"meal_type":  "lunch",
		"entry_date": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/dashboard/summary?date=2024-03-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var summary struct {
		CalorieGoal    int `json:"calorie_goal"`
		CaloriePercent int `json:"calorie_percent"`
		Water          struct {
			ByTimeOfDay []json.RawMessage `json:"by_time_of_day"`
		} `json:"water"`
	}
	decode(t, w, &summary)
	assert.Equal(t, 1636, summary.CalorieGoal)
	assert.Equal(t, 50, summary.CaloriePercent)
	assert.Len(t, summary.Water.ByTimeOfDay, 6)
}

func TestProgressEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "progress@example.com")

	w := app.request(t, http.MethodPut, "/api/v1/profile", token, gin.H{
		"goal_type":      "lose_weight",
		"goal_weight_kg": 70,
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, entry := range []gin.H{
		{"weight_kg": 80, "entry_date": "2024-03-01"},
		{"weight_kg": 75, "entry_date": "2024-03-10"},
	} {
		w = app.request(t, http.MethodPost, "/api/v1/weight-entries", token, entry)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = app.request(t, http.MethodGet, "/api/v1/progress?from=2024-03-01&to=2024-03-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report struct {
		GoalProgress struct {
			Percent int    `json:"percent"`
			Status  string `json:"status"`
		} `json:"goal_progress"`
		DailyCalories []json.RawMessage `json:"daily_calories"`
	}
	decode(t, w, &report)
	assert.Equal(t, 50, report.GoalProgress.Percent)
	assert.Equal(t, "in progress", report.GoalProgress.Status)
	assert.Len(t, report.DailyCalories, 10)
}

func TestFoodSearchEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "search@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/foods/custom", token, gin.H{
		"name":     "Protein Shake",
		"category": "drinks",
		"calories": 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/foods/search?q=shake", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Foods []struct {
			Name   string `json:"name"`
			Custom bool   `json:"custom"`
		} `json:"foods"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Foods, 1)
	assert.True(t, resp.Foods[0].Custom)
}

func TestLogoutEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "logout@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMeEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "me@example.com")

	w := app.request(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "me@example.com", me.Email)
}
