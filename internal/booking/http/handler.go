package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/auth"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/booking"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/pkg/request"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Day handles GET /v1/schedule/:date. Public callers see slots with booked
// flags; a valid coach token additionally reveals the booking details.
func (h *Handler) Day(c *gin.Context) {
	var req request.ByDateRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	pairs, err := h.service.ListForDate(c.Request.Context(), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	coach := auth.IsCoach(c)
	items := make([]SlotResponse, len(pairs))
	for i, sb := range pairs {
		items[i] = NewSlotResponse(sb, coach)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

// Month handles GET /v1/schedule?year=&month= for the calendar grid.
func (h *Handler) Month(c *gin.Context) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return
	}

	summaries, err := h.service.MonthSummary(c.Request.Context(), q.Year, time.Month(q.Month))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DaySummaryResponse, len(summaries))
	for i, d := range summaries {
		items[i] = NewDaySummaryResponse(d)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

// Create handles POST /v1/bookings.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Book(c.Request.Context(), booking.BookRequest{
		SlotID:      body.SlotID,
		StudentName: body.StudentName,
		Phone:       body.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Booking:   NewBookingDetail(result.Booking),
		MailtoURI: result.MailtoURI,
	})
}
