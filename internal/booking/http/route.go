package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the schedule and booking endpoints. coachOptional
// decorates requests that carry a valid coach token; booking creation and
// public views need no auth at all.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, coachOptional gin.HandlerFunc) {
	schedule := g.Group("/schedule")
	schedule.Use(coachOptional)
	{
		schedule.GET("", h.Month)
		schedule.GET("/:date", h.Day)
	}

	g.POST("/bookings", h.Create)
}
