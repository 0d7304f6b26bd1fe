package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/types"
)

func foodEntryRequest(name, date string, calories float64) *types.CreateFoodEntryRequest {
	return &types.CreateFoodEntryRequest{
		FoodName:  name,
		Calories:  calories,
		Protein:   10,
		Carbs:     20,
		Fat:       5,
		MealType:  "lunch",
		EntryDate: date,
	}
}

func TestFoodEntryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrackingService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	entry, err := svc.CreateFoodEntry(ctx, userID, foodEntryRequest("Oatmeal", "2024-03-01", 300))
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal", entry.FoodName)
	assert.Equal(t, 2024, entry.EntryDate.Year())

	updated, err := svc.UpdateFoodEntry(ctx, userID, entry.ID, foodEntryRequest("Oatmeal with berries", "2024-03-01", 350))
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal with berries", updated.FoodName)
	assert.Equal(t, 350.0, updated.Calories)

	entries, err := svc.ListFoodEntries(ctx, userID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, svc.DeleteFoodEntry(ctx, userID, entry.ID))
	entries, err = svc.ListFoodEntries(ctx, userID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListFoodEntriesFiltersByDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrackingService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	_, err := svc.CreateFoodEntry(ctx, userID, foodEntryRequest("Toast", "2024-03-01", 200))
	require.NoError(t, err)
	_, err = svc.CreateFoodEntry(ctx, userID, foodEntryRequest("Soup", "2024-03-02", 250))
	require.NoError(t, err)

	entries, err := svc.ListFoodEntries(ctx, userID, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Soup", entries[0].FoodName)
}

func TestFoodEntryOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrackingService(db)
	ctx := context.Background()
	owner := createTestUser(t, db)
	other := createTestUser(t, db)

	entry, err := svc.CreateFoodEntry(ctx, owner, foodEntryRequest("Salad", "2024-03-01", 150))
	require.NoError(t, err)

	_, err = svc.UpdateFoodEntry(ctx, other, entry.ID, foodEntryRequest("Hijacked", "2024-03-01", 1))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.DeleteFoodEntry(ctx, other, entry.ID), gorm.ErrRecordNotFound)
}

func TestDeleteFoodEntryNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrackingService(db)
	userID := createTestUser(t, db)

	err := svc.DeleteFoodEntry(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestWaterIntakeLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrackingService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	intake, err := svc.CreateWaterIntake(ctx, userID, &types.CreateWaterIntakeRequest{
		AmountML:  500,
		EntryDate: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, intake.AmountML)

	intakes, err := svc.ListWaterIntakes(ctx, userID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, intakes, 1)

	require.NoError(t, svc.DeleteWaterIntake(ctx, userID, intake.ID))
	intakes, err = svc.ListWaterIntakes(ctx, userID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, intakes)
}

func TestWeightEntriesRangeQuery(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrackingService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	for _, day := range []string{"2024-03-01", "2024-03-05", "2024-03-10"} {
		_, err := svc.CreateWeightEntry(ctx, userID, &types.CreateWeightEntryRequest{
			WeightKG:  80,
			EntryDate: day,
		})
		require.NoError(t, err)
	}

	entries, err := svc.ListWeightEntries(ctx, userID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
