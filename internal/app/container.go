package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/api"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/auth"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/booking"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/config"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/db"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/geocode"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/queue"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/schedule"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Resolver   *geocode.Resolver
	Catalog    *schedule.Catalog

	pool *pgxpool.Pool // nil for the file store
}

// NewContainer initializes all modules and returns the container.
// The slot catalog is generated exactly once here; a malformed timetable is
// a fatal configuration error, not a runtime fault.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// Slot catalog
	start, end := schedule.DefaultWindow()
	catalog, err := schedule.NewCatalog(start, end, schedule.DefaultRuleset())
	if err != nil {
		return nil, fmt.Errorf("build slot catalog: %w", err)
	}

	// Auth components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	// Booking repository
	var (
		repo booking.Repository
		pool *pgxpool.Pool
	)
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err = db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("connect booking store: %w", err)
		}
		repo = booking.NewPgxRepository(pool)
	default:
		repo = booking.NewFileRepository(cfg.BookingsFile)
	}

	// Geocode collaborator: cache in Redis when configured, else in process.
	var cache geocode.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cache = geocode.NewRedisCache(rdb)
	} else {
		cache = geocode.NewMemoryCache()
	}
	var geocodeClient *geocode.Client
	if cfg.GeminiAPIKey != "" {
		geocodeClient = geocode.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Println("GEMINI_API_KEY not set, venue addresses use fallback annotations")
	}
	resolver := geocode.NewResolver(geocodeClient, cache)

	// Event publisher, optional
	var publisher booking.EventPublisher
	if cfg.AMQPURL != "" {
		publisher = queue.NewPublisher(cfg.AMQPURL)
	}

	// Booking module
	bookingService := booking.NewService(catalog, repo, resolver, publisher, cfg.CoachEmail)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		BookingService:    bookingService,
		Resolver:          resolver,
		JWTManager:        jwtManager,
		PasswordHasher:    passwordHasher,
		CoachPasswordHash: cfg.CoachPasswordHash,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Resolver:   resolver,
		Catalog:    catalog,
		pool:       pool,
	}, nil
}

// Close releases held resources.
func (c *Container) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}
