package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/auth"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/booking"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/geocode"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/schedule"
)

const testCoachPassword = "coach-password"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	start, end := schedule.DefaultWindow()
	catalog, err := schedule.NewCatalog(start, end, schedule.DefaultRuleset())
	require.NoError(t, err)

	repo := booking.NewFileRepository(filepath.Join(t.TempDir(), "bookings.json"))
	resolver := geocode.NewResolver(nil, geocode.NewMemoryCache())
	service := booking.NewService(catalog, repo, resolver, nil, "coach@example.com")

	hasher := auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost)
	hash, err := hasher.Hash(testCoachPassword)
	require.NoError(t, err)

	return NewRouter(Config{
		BookingService:    service,
		Resolver:          resolver,
		JWTManager:        auth.NewJWTManager("test-secret", time.Hour),
		PasswordHasher:    hasher,
		CoachPasswordHash: hash,
	})
}

func doJSON(r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginCoach(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/v1/coach/login", gin.H{"password": testCoachPassword}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CoachLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestCoachLogin(t *testing.T) {
	r := newTestRouter(t)

	loginCoach(t, r)

	w := doJSON(r, http.MethodPost, "/v1/coach/login", gin.H{"password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/v1/coach/login", gin.H{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMonthView(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/v1/schedule?year=2026&month=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			Date      string `json:"date"`
			SlotCount int    `json:"slot_count"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Items)
	assert.Equal(t, len(resp.Items), resp.Total)
	assert.Equal(t, "2026-01-01", resp.Items[0].Date)

	// Missing or out-of-range query parameters are a client error.
	w = doJSON(r, http.MethodGet, "/v1/schedule?year=2026", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodGet, "/v1/schedule?year=2026&month=13", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDayView(t *testing.T) {
	r := newTestRouter(t)

	// 2026-01-05 is a Monday: three Meiti slots.
	w := doJSON(r, http.MethodGet, "/v1/schedule/2026-01-05", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			ID       string          `json:"id"`
			Court    string          `json:"court"`
			Bookable bool            `json:"bookable"`
			Booked   bool            `json:"booked"`
			Booking  json.RawMessage `json:"booking"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "m-2026-01-05-18", resp.Items[0].ID)
	assert.Equal(t, "meiti", resp.Items[0].Court)
	assert.True(t, resp.Items[0].Bookable)

	w = doJSON(r, http.MethodGet, "/v1/schedule/not-a-date", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBooking(t *testing.T) {
	r := newTestRouter(t)

	body := gin.H{
		"slot_id":      "m-2026-01-05-18",
		"student_name": "王小明",
		"phone":        "0912345678",
	}

	w := doJSON(r, http.MethodPost, "/v1/bookings", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Booking struct {
			ID          string `json:"id"`
			StudentName string `json:"student_name"`
		} `json:"booking"`
		MailtoURI string `json:"mailto_uri"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Booking.ID)
	assert.Equal(t, "王小明", created.Booking.StudentName)
	assert.Contains(t, created.MailtoURI, "mailto:coach@example.com")

	// First writer wins: the same slot cannot be booked twice.
	w = doJSON(r, http.MethodPost, "/v1/bookings", body, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPost, "/v1/bookings", gin.H{
		"slot_id":      "m-2099-01-01-18",
		"student_name": "王小明",
		"phone":        "0912345678",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/v1/bookings", gin.H{"slot_id": "m-2026-01-12-18"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDayViewHidesContactDetailsFromPublic(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/v1/bookings", gin.H{
		"slot_id":      "m-2026-01-05-18",
		"student_name": "王小明",
		"phone":        "0912345678",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	type daySlot struct {
		ID       string          `json:"id"`
		Bookable bool            `json:"bookable"`
		Booked   bool            `json:"booked"`
		Booking  json.RawMessage `json:"booking"`
	}
	var resp struct {
		Items []daySlot `json:"items"`
	}

	// Public view: booked flag only, no contact details.
	w = doJSON(r, http.MethodGet, "/v1/schedule/2026-01-05", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	assert.True(t, resp.Items[0].Booked)
	assert.False(t, resp.Items[0].Bookable)
	assert.Nil(t, resp.Items[0].Booking)

	// Coach view reveals the record.
	token := loginCoach(t, r)
	w = doJSON(r, http.MethodGet, "/v1/schedule/2026-01-05", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Items[0].Booking)

	var detail struct {
		StudentName string `json:"student_name"`
		Phone       string `json:"phone"`
	}
	require.NoError(t, json.Unmarshal(resp.Items[0].Booking, &detail))
	assert.Equal(t, "王小明", detail.StudentName)
	assert.Equal(t, "0912345678", detail.Phone)
}

func TestListCourts(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/v1/courts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			Type     string `json:"type"`
			Name     string `json:"name"`
			Bookable bool   `json:"bookable"`
		} `json:"items"`
		NeedsCredentials bool `json:"geocode_needs_credentials"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 5)
	assert.Equal(t, "shezi", resp.Items[0].Type)
	assert.False(t, resp.NeedsCredentials)

	var socialBookable *bool
	for i := range resp.Items {
		if resp.Items[i].Type == "social" {
			socialBookable = &resp.Items[i].Bookable
		}
	}
	require.NotNil(t, socialBookable)
	assert.False(t, *socialBookable)
}
