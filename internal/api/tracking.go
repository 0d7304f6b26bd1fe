package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/types"
)

const dateLayout = "2006-01-02"

// TrackingHandler exposes the food, water, and weight logs.
type TrackingHandler struct {
	trackingService service.ITrackingService
}

func NewTrackingHandler(trackingService service.ITrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

func (h *TrackingHandler) RegisterRoutes(router *gin.RouterGroup) {
	food := router.Group("/food-entries")
	{
		food.GET("", h.ListFoodEntries)
		food.POST("", h.CreateFoodEntry)
		food.PUT("/:id", h.UpdateFoodEntry)
		food.DELETE("/:id", h.DeleteFoodEntry)
	}

	water := router.Group("/water-intakes")
	{
		water.GET("", h.ListWaterIntakes)
		water.POST("", h.CreateWaterIntake)
		water.DELETE("/:id", h.DeleteWaterIntake)
	}

	weight := router.Group("/weight-entries")
	{
		weight.GET("", h.ListWeightEntries)
		weight.POST("", h.CreateWeightEntry)
		weight.DELETE("/:id", h.DeleteWeightEntry)
	}
}

// queryDate parses the "date" query parameter, defaulting to today.
func queryDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (h *TrackingHandler) CreateFoodEntry(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.CreateFoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.trackingService.CreateFoodEntry(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create food entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackingHandler) UpdateFoodEntry(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.CreateFoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.trackingService.UpdateFoodEntry(c.Request.Context(), userID, entryID, &req)
	if err != nil {
		respondError(c, err, "failed to update food entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *TrackingHandler) DeleteFoodEntry(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.trackingService.DeleteFoodEntry(c.Request.Context(), userID, entryID); err != nil {
		respondError(c, err, "failed to delete food entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food entry deleted"})
}

func (h *TrackingHandler) ListFoodEntries(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}

	entries, err := h.trackingService.ListFoodEntries(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "failed to list food entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *TrackingHandler) CreateWaterIntake(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.CreateWaterIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intake, err := h.trackingService.CreateWaterIntake(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to log water intake")
		return
	}

	c.JSON(http.StatusCreated, intake)
}

func (h *TrackingHandler) DeleteWaterIntake(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	intakeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.trackingService.DeleteWaterIntake(c.Request.Context(), userID, intakeID); err != nil {
		respondError(c, err, "failed to delete water intake")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "water intake deleted"})
}

func (h *TrackingHandler) ListWaterIntakes(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}

	intakes, err := h.trackingService.ListWaterIntakes(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "failed to list water intakes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"intakes": intakes})
}

func (h *TrackingHandler) CreateWeightEntry(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.CreateWeightEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.trackingService.CreateWeightEntry(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to log weight")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackingHandler) DeleteWeightEntry(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.trackingService.DeleteWeightEntry(c.Request.Context(), userID, entryID); err != nil {
		respondError(c, err, "failed to delete weight entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "weight entry deleted"})
}

// ListWeightEntries returns entries in the from/to range, defaulting to the
// last 30 days.
func (h *TrackingHandler) ListWeightEntries(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	from, to, ok := queryRange(c)
	if !ok {
		return
	}

	entries, err := h.trackingService.ListWeightEntries(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err, "failed to list weight entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// queryRange parses from/to query parameters, defaulting to the last 30 days.
func queryRange(c *gin.Context) (time.Time, time.Time, bool) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to date is before from date"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
