package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/types"
)

type InventoryHandler struct {
	inventoryService service.IInventoryService
}

func NewInventoryHandler(inventoryService service.IInventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/inventory-items")
	{
		items.GET("", h.ListItems)
		items.POST("", h.CreateItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create inventory item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), userID, itemID, &req)
	if err != nil {
		respondError(c, err, "failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, err, "failed to delete inventory item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "inventory item deleted"})
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list inventory items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
