package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutriplan/backend/internal/database"
	"github.com/nutriplan/backend/internal/models"
)

// setupTestDB opens a fresh in-memory SQLite database for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// createTestUser inserts a user and an empty profile, returning the user ID.
func createTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		Email:        fmt.Sprintf("%s@example.com", uuid.New()),
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.UserProfile{
		UserID: user.ID,
		Name:   user.Name,
	}
	require.NoError(t, db.Create(&profile).Error)

	return user.ID
}
