package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/models"
)

func TestSendEmailWithoutSMTPLogsInstead(t *testing.T) {
	svc := NewEmailService(&config.Config{})

	err := svc.SendEmail("someone@example.com", "Hi", "<p>Hello</p>")
	assert.NoError(t, err)
}

func TestSendWelcomeEmailWithoutSMTP(t *testing.T) {
	svc := NewEmailService(&config.Config{})

	err := svc.SendWelcomeEmail(&models.User{Name: "Alice", Email: "alice@example.com"})
	assert.NoError(t, err)
}
