package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/types"
)

func TestInventoryItemLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	item, err := svc.CreateItem(ctx, userID, &types.CreateInventoryItemRequest{
		Name:       "Greek Yogurt",
		Quantity:   4,
		Unit:       "cups",
		Category:   "dairy",
		ExpiryDate: ptr("2024-03-15"),
	})
	require.NoError(t, err)
	require.NotNil(t, item.ExpiryDate)
	assert.Equal(t, 15, item.ExpiryDate.Day())

	updated, err := svc.UpdateItem(ctx, userID, item.ID, &types.CreateInventoryItemRequest{
		Name:     "Greek Yogurt",
		Quantity: 2,
		Unit:     "cups",
		Category: "dairy",
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.Quantity)
	assert.Nil(t, updated.ExpiryDate)

	items, err := svc.ListItems(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.DeleteItem(ctx, userID, item.ID))
	items, err = svc.ListItems(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInventoryOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)
	ctx := context.Background()
	owner := createTestUser(t, db)
	other := createTestUser(t, db)

	item, err := svc.CreateItem(ctx, owner, &types.CreateInventoryItemRequest{Name: "Flour", Quantity: 1})
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, other, item.ID, &types.CreateInventoryItemRequest{Name: "Hijack", Quantity: 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.DeleteItem(ctx, other, item.ID), gorm.ErrRecordNotFound)
}

func TestCreateItemRejectsBadExpiry(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInventoryService(db)
	userID := createTestUser(t, db)

	_, err := svc.CreateItem(context.Background(), userID, &types.CreateInventoryItemRequest{
		Name:       "Flour",
		ExpiryDate: ptr("not-a-date"),
	})
	assert.Error(t, err)
}
