package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/parth1928/quickcourt-backend/internal/auth"
	"github.com/parth1928/quickcourt-backend/internal/booking"
	bookingHttp "github.com/parth1928/quickcourt-backend/internal/booking/http"
	"github.com/parth1928/quickcourt-backend/internal/court"
	courtHttp "github.com/parth1928/quickcourt-backend/internal/court/http"
	"github.com/parth1928/quickcourt-backend/internal/metrics"
	"github.com/parth1928/quickcourt-backend/internal/photo"
	photoHttp "github.com/parth1928/quickcourt-backend/internal/photo/http"
	"github.com/parth1928/quickcourt-backend/internal/review"
	reviewHttp "github.com/parth1928/quickcourt-backend/internal/review/http"
	"github.com/parth1928/quickcourt-backend/internal/slot"
	slotHttp "github.com/parth1928/quickcourt-backend/internal/slot/http"
	"github.com/parth1928/quickcourt-backend/internal/user"
	userHttp "github.com/parth1928/quickcourt-backend/internal/user/http"
	"github.com/parth1928/quickcourt-backend/internal/venue"
	venueHttp "github.com/parth1928/quickcourt-backend/internal/venue/http"
)

// Services bundles the module services the router exposes.
type Services struct {
	User    user.Service
	Venue   venue.Service
	Court   court.Service
	Slot    slot.Service
	Booking booking.Service
	Review  review.Service
	Photo   photo.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth, Metrics)
// and registering routes for the modules.
func NewRouter(
	services Services,
	jwtManager *auth.JWTManager,
	metricsCollector *metrics.Metrics,
	allowedOrigins []string,
) *gin.Engine {

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(metricsCollector.Middleware())

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metricsCollector.Handler())

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(jwtManager)
	// Role middlewares check the role claim set by authMiddleware.
	adminMiddleware := RequireAdmin()
	ownerMiddleware := RequireFacilityOwner()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewUserHandler(services.User, jwtManager)
	venueHandler := venueHttp.NewHandler(services.Venue)
	courtHandler := courtHttp.NewHandler(services.Court)
	slotHandler := slotHttp.NewHandler(services.Slot, services.Court)
	bookingHandler := bookingHttp.NewHandler(services.Booking)
	reviewHandler := reviewHttp.NewHandler(services.Review)
	photoHandler := photoHttp.NewHandler(services.Photo)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware, ownerMiddleware, adminMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware, ownerMiddleware)
		slotHttp.RegisterRoutes(v1, slotHandler, authMiddleware, ownerMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, ownerMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, authMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, ownerMiddleware)
	}

	return r
}
