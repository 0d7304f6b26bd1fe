package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/types"
)

type MealPlanHandler struct {
	mealPlanService service.IMealPlanService
}

func NewMealPlanHandler(mealPlanService service.IMealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.GET("", h.ListMealPlans)
		plans.GET("/:id", h.GetMealPlan)
		plans.POST("", h.CreateMealPlan)
		plans.PUT("/:id", h.UpdateMealPlan)
		plans.DELETE("/:id", h.DeleteMealPlan)
	}
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.mealPlanService.CreateMealPlan(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create meal plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	planID, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.mealPlanService.GetMealPlan(c.Request.Context(), userID, planID)
	if err != nil {
		respondError(c, err, "failed to get meal plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) UpdateMealPlan(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	planID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.mealPlanService.UpdateMealPlan(c.Request.Context(), userID, planID, &req)
	if err != nil {
		respondError(c, err, "failed to update meal plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	planID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.mealPlanService.DeleteMealPlan(c.Request.Context(), userID, planID); err != nil {
		respondError(c, err, "failed to delete meal plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}

// ListMealPlans returns all plans, or just one day's plans when the "date"
// query parameter is set.
func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	plans, err := h.mealPlanService.ListMealPlans(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "failed to list meal plans")
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plans": plans})
}
