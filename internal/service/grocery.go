package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/types"
)

// uncategorized is the bucket for grocery items saved without a category.
const uncategorized = "other"

// GroceryService manages grocery lists and their items.
type GroceryService struct {
	db *gorm.DB
}

var _ IGroceryService = (*GroceryService)(nil)

func NewGroceryService(db *gorm.DB) *GroceryService {
	return &GroceryService{db: db}
}

func (s *GroceryService) CreateList(ctx context.Context, userID uuid.UUID, name string) (*models.GroceryList, error) {
	list := models.GroceryList{
		UserID: userID,
		Name:   name,
	}
	if err := s.db.WithContext(ctx).Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *GroceryService) GetList(ctx context.Context, userID, listID uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", listID, userID).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteList removes a list and its items.
func (s *GroceryService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", listID, userID).Delete(&models.GroceryList{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("list_id = ?", listID).Delete(&models.GroceryItem{}).Error
	})
}

func (s *GroceryService) ListLists(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error) {
	var lists []models.GroceryList
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

func (s *GroceryService) AddItem(ctx context.Context, userID, listID uuid.UUID, req *types.CreateGroceryItemRequest) (*models.GroceryItem, error) {
	if _, err := s.GetList(ctx, userID, listID); err != nil {
		return nil, err
	}

	item := models.GroceryItem{
		ListID:   listID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GroceryService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req *types.UpdateGroceryItemRequest) (*models.GroceryItem, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Checked != nil {
		item.Checked = *req.Checked
	}

	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GroceryService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(item).Error
}

// ItemsByCategory groups a list's items for the store-aisle view. Items
// without a category land in the "other" bucket.
func (s *GroceryService) ItemsByCategory(ctx context.Context, userID, listID uuid.UUID) (map[string][]models.GroceryItem, error) {
	list, err := s.GetList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.GroceryItem)
	for _, item := range list.Items {
		category := item.Category
		if category == "" {
			category = uncategorized
		}
		grouped[category] = append(grouped[category], item)
	}
	return grouped, nil
}

// ownedItem loads an item and verifies its list belongs to the user.
func (s *GroceryService) ownedItem(ctx context.Context, userID, itemID uuid.UUID) (*models.GroceryItem, error) {
	var item models.GroceryItem
	err := s.db.WithContext(ctx).
		Joins("JOIN grocery_lists ON grocery_lists.id = grocery_items.list_id").
		Where("grocery_items.id = ? AND grocery_lists.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
