package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/auth"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/tennis-scheduling-backend/internal/booking/http"
	courtHttp "github.com/nekogravitycat/tennis-scheduling-backend/internal/court/http"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/geocode"
)

// Config holds everything the router needs.
type Config struct {
	IsProduction      bool
	ProdOrigins       string // comma-separated allowed origins in production
	BookingService    booking.Service
	Resolver          *geocode.Resolver
	JWTManager        *auth.JWTManager
	PasswordHasher    auth.PasswordHasher
	CoachPasswordHash string
}

// NewRouter initializes the HTTP router engine: middleware (CORS, Logger,
// Recovery) plus the routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	coachOptional := auth.CoachOptional(cfg.JWTManager)

	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	courtHandler := courtHttp.NewHandler(cfg.Resolver)
	coachHandler := NewCoachHandler(cfg.CoachPasswordHash, cfg.PasswordHasher, cfg.JWTManager)

	v1 := r.Group("/v1")
	{
		v1.POST("/coach/login", coachHandler.Login)
		courtHttp.RegisterRoutes(v1, courtHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler, coachOptional)
	}

	return r
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
