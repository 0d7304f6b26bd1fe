package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/types"
)

type GroceryHandler struct {
	groceryService service.IGroceryService
}

func NewGroceryHandler(groceryService service.IGroceryService) *GroceryHandler {
	return &GroceryHandler{groceryService: groceryService}
}

func (h *GroceryHandler) RegisterRoutes(router *gin.RouterGroup) {
	lists := router.Group("/grocery-lists")
	{
		lists.GET("", h.ListLists)
		lists.POST("", h.CreateList)
		lists.GET("/:id", h.GetList)
		lists.DELETE("/:id", h.DeleteList)
		lists.GET("/:id/by-category", h.ItemsByCategory)
		lists.POST("/:id/items", h.AddItem)
	}

	items := router.Group("/grocery-items")
	{
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}

func (h *GroceryHandler) CreateList(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.CreateGroceryListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.groceryService.CreateList(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, err, "failed to create grocery list")
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (h *GroceryHandler) GetList(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.groceryService.GetList(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, err, "failed to get grocery list")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *GroceryHandler) DeleteList(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.groceryService.DeleteList(c.Request.Context(), userID, listID); err != nil {
		respondError(c, err, "failed to delete grocery list")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "grocery list deleted"})
}

func (h *GroceryHandler) ListLists(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	lists, err := h.groceryService.ListLists(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list grocery lists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"grocery_lists": lists})
}

func (h *GroceryHandler) AddItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.CreateGroceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.groceryService.AddItem(c.Request.Context(), userID, listID, &req)
	if err != nil {
		respondError(c, err, "failed to add grocery item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *GroceryHandler) UpdateItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateGroceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.groceryService.UpdateItem(c.Request.Context(), userID, itemID, &req)
	if err != nil {
		respondError(c, err, "failed to update grocery item")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *GroceryHandler) DeleteItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.groceryService.DeleteItem(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, err, "failed to delete grocery item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "grocery item deleted"})
}

// ItemsByCategory returns a list's items grouped for the store-aisle view.
func (h *GroceryHandler) ItemsByCategory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	grouped, err := h.groceryService.ItemsByCategory(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, err, "failed to group grocery items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": grouped})
}
