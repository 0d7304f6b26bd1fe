package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that all settings required in the given environment
// are present. Development is permissive; production and CI require a real
// JWT secret and database credentials.
func ValidateConfig(cfg *Config, env Environment) error {
	var missing []string

	if cfg.ServerPort == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.DBName == "" {
		missing = append(missing, "DB_NAME")
	}

	if env == Production || env == CI {
		if cfg.JWTSecret == "" {
			missing = append(missing, "JWT_SECRET")
		}
		if cfg.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
		if cfg.DBPassword == "" {
			missing = append(missing, "DB_PASSWORD")
		}
	}

	if len(missing) > 0 {
		return ValidationError{
			Field:   strings.Join(missing, ", "),
			Message: fmt.Sprintf("required in %s environment", env),
		}
	}

	if env == Production && len(cfg.JWTSecret) < 32 {
		return ValidationError{Field: "JWT_SECRET", Message: "must be at least 32 characters in production"}
	}

	return nil
}
