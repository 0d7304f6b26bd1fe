package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/api"
	"github.com/nutriplan/backend/internal/database"
	"github.com/nutriplan/backend/internal/middleware"
	"github.com/nutriplan/backend/internal/router"
	"github.com/nutriplan/backend/internal/service"
)

// Server wires configuration, storage, services, and routes into one HTTP
// server.
type Server struct {
	cfg    *config.Config
	db     *gorm.DB
	redis  *redis.Client
	engine *gin.Engine
	http   *http.Server
}

// New builds the server: database, migrations, Redis, S3, services, routes.
// Redis and S3 are optional; the server degrades without them.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := database.RunMigrations(db, migrationsDir); err != nil {
		return nil, err
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, logout denylist and rate limiting disabled: %v", err)
		redisClient = nil
	}

	var avatarService *service.AvatarService
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("Warning: S3 unavailable, avatar uploads disabled: %v", err)
	} else {
		avatarService = service.NewAvatarService(s3Config)
	}

	authService := service.NewAuthService(db, redisClient, cfg.JWTSecret)
	emailService := service.NewEmailService(cfg)
	profileService := service.NewProfileService(db)
	trackingService := service.NewTrackingService(db)
	mealPlanService := service.NewMealPlanService(db)
	foodService := service.NewFoodService(db)
	groceryService := service.NewGroceryService(db)
	inventoryService := service.NewInventoryService(db)
	dashboardService := service.NewDashboardService(db)

	var writeLimiter *middleware.RateLimiter
	if redisClient != nil {
		writeLimiter = middleware.NewWriteRateLimiter(redisClient)
	}

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService, emailService),
		Profile:   api.NewProfileHandler(profileService, avatarService),
		Tracking:  api.NewTrackingHandler(trackingService),
		MealPlan:  api.NewMealPlanHandler(mealPlanService),
		Food:      api.NewFoodHandler(foodService),
		Grocery:   api.NewGroceryHandler(groceryService),
		Inventory: api.NewInventoryHandler(inventoryService),
		Dashboard: api.NewDashboardHandler(dashboardService),
	}

	engine := router.SetupRouter(handlers, authService, writeLimiter)

	return &Server{
		cfg:    cfg,
		db:     db,
		redis:  redisClient,
		engine: engine,
	}, nil
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		defer func() { _ = s.redis.Close() }()
	}
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
