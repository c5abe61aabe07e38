package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/geocode"
)

type Handler struct {
	resolver *geocode.Resolver
}

func NewHandler(resolver *geocode.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// List handles GET /v1/courts.
func (h *Handler) List(c *gin.Context) {
	types := court.AllTypes()
	items := make([]CourtResponse, 0, len(types))
	for _, t := range types {
		info, ok := court.GetInfo(t)
		if !ok {
			continue
		}
		address, mapURL := h.resolver.Address(t)
		items = append(items, newCourtResponse(info, address, mapURL))
	}

	c.JSON(http.StatusOK, ListCourtsResponse{
		Items:            items,
		NeedsCredentials: h.resolver.NeedsCredentials(),
	})
}
