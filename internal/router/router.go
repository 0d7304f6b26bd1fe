package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nutriplan/backend/internal/api"
	"github.com/nutriplan/backend/internal/middleware"
	"github.com/nutriplan/backend/internal/service"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Tracking  *api.TrackingHandler
	MealPlan  *api.MealPlanHandler
	Food      *api.FoodHandler
	Grocery   *api.GroceryHandler
	Inventory *api.InventoryHandler
	Dashboard *api.DashboardHandler
}

// SetupRouter configures the application routes. The write limiter is
// optional; without Redis the tracking endpoints run unthrottled.
func SetupRouter(h Handlers, authService service.IAuthService, writeLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)

	v1 := router.Group("/api/v1")

	// Auth routes manage their own middleware
	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		h.Profile.RegisterRoutes(protected)
		h.MealPlan.RegisterRoutes(protected)
		h.Food.RegisterRoutes(protected)
		h.Grocery.RegisterRoutes(protected)
		h.Inventory.RegisterRoutes(protected)
		h.Dashboard.RegisterRoutes(protected)

		// The daily logs are the hot write path
		tracking := protected.Group("")
		if writeLimiter != nil {
			tracking.Use(writeLimiter.RateLimitMiddleware())
		}
		h.Tracking.RegisterRoutes(tracking)
	}

	return router
}
