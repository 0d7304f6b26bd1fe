package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, nil, "test-secret")
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Registration creates the empty profile row
	profile, err := NewProfileService(db).GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)

	loggedIn, loginToken, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, nil, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Imposter", "alice@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, nil, "test-secret")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, nil, "test-secret")

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenValid(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, nil, "test-secret")
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := NewAuthService(nil, nil, "test-secret")

	claims, err := svc.ValidateToken("invalid.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, token, err := NewAuthService(db, nil, "secret-one").Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = NewAuthService(db, nil, "secret-two").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutWithoutRedis(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, nil, "test-secret")
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	// Without Redis logout is a no-op and the token stays valid
	require.NoError(t, svc.Logout(ctx, token))
	_, err = svc.ValidateToken(token)
	assert.NoError(t, err)
}
