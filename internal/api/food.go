package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/types"
)

type FoodHandler struct {
	foodService service.IFoodService
}

func NewFoodHandler(foodService service.IFoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("/search", h.SearchFoods)
		foods.GET("/categories", h.ListCategories)
		foods.GET("/custom", h.ListCustomFoods)
		foods.POST("/custom", h.CreateCustomFood)
		foods.PUT("/custom/:id", h.UpdateCustomFood)
		foods.DELETE("/custom/:id", h.DeleteCustomFood)
	}
}

func (h *FoodHandler) SearchFoods(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	results, err := h.foodService.SearchFoods(c.Request.Context(), userID, c.Query("q"), c.Query("category"))
	if err != nil {
		respondError(c, err, "failed to search foods")
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": results})
}

func (h *FoodHandler) ListCategories(c *gin.Context) {
	categories, err := h.foodService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *FoodHandler) CreateCustomFood(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.CreateCustomFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foodService.CreateCustomFood(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create custom food")
		return
	}

	c.JSON(http.StatusCreated, food)
}

func (h *FoodHandler) UpdateCustomFood(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	foodID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.CreateCustomFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foodService.UpdateCustomFood(c.Request.Context(), userID, foodID, &req)
	if err != nil {
		respondError(c, err, "failed to update custom food")
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) DeleteCustomFood(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	foodID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.foodService.DeleteCustomFood(c.Request.Context(), userID, foodID); err != nil {
		respondError(c, err, "failed to delete custom food")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "custom food deleted"})
}

func (h *FoodHandler) ListCustomFoods(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	foods, err := h.foodService.ListCustomFoods(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list custom foods")
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}
