package app

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parth1928/quickcourt-backend/internal/api"
	"github.com/parth1928/quickcourt-backend/internal/auth"
	"github.com/parth1928/quickcourt-backend/internal/booking"
	"github.com/parth1928/quickcourt-backend/internal/cache"
	"github.com/parth1928/quickcourt-backend/internal/court"
	"github.com/parth1928/quickcourt-backend/internal/metrics"
	"github.com/parth1928/quickcourt-backend/internal/photo"
	"github.com/parth1928/quickcourt-backend/internal/pkg/storage"
	"github.com/parth1928/quickcourt-backend/internal/review"
	"github.com/parth1928/quickcourt-backend/internal/slot"
	"github.com/parth1928/quickcourt-backend/internal/user"
	"github.com/parth1928/quickcourt-backend/internal/venue"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	DBPool        *pgxpool.Pool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTTTL        time.Duration
	BcryptCost    int
	StorageDir    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Availability cache. Falls back to a no-op when Redis is not configured.
	slotCache := cache.NewNoop()
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		slotCache = redisCache
	} else {
		log.Println("REDIS_ADDR not set, availability caching disabled")
	}

	photoStore, err := storage.NewLocalStorage(cfg.StorageDir)
	if err != nil {
		return nil, err
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Venue Module
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	venueService := venue.NewService(venueRepo)

	// Court Module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo, venueService)

	// Slot Module
	slotRepo := slot.NewPgxRepository(cfg.DBPool)
	slotService := slot.NewService(slotRepo, courtService, slotCache)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, slotService, venueService)

	// Review Module
	reviewRepo := review.NewPgxRepository(cfg.DBPool)
	reviewService := review.NewService(reviewRepo, venueService)

	// Photo Module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, venueService, photoStore)

	metricsCollector := metrics.New("quickcourt-backend")

	// Router
	router := api.NewRouter(api.Services{
		User:    userService,
		Venue:   venueService,
		Court:   courtService,
		Slot:    slotService,
		Booking: bookingService,
		Review:  reviewService,
		Photo:   photoService,
	}, jwtManager, metricsCollector, allowedOrigins(cfg))

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}

// allowedOrigins returns the CORS origin list for the environment.
func allowedOrigins(cfg Config) []string {
	if cfg.IsProduction {
		origins := []string{}
		for _, o := range strings.Split(cfg.ProdOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return origins
	}
	return []string{
		"http://localhost:3000", // Frontend dev server
		"http://localhost:8081", // Swagger
	}
}
