package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-key", "test-model")
	c.baseURL = server.URL
	return c
}

func TestLookupSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		payload, _ := json.Marshal(Address{
			Address: "台北市士林區延平北路七段",
			URL:     "https://maps.google.com/?q=shezi",
		})
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": string(payload)}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	addr, err := client.Lookup(context.Background(), "社子網球場")
	require.NoError(t, err)
	assert.Equal(t, "台北市士林區延平北路七段", addr.Address)
	assert.Equal(t, "https://maps.google.com/?q=shezi", addr.URL)
}

func TestLookupEntityNotFoundSignalsCredentialFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    404,
				"status":  "NOT_FOUND",
				"message": "Requested entity was not found.",
			},
		})
	})

	_, err := client.Lookup(context.Background(), "社子網球場")
	require.ErrorIs(t, err, ErrAPIKeyNotFound)
}

func TestLookupServerErrorIsPlainError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"status":"INTERNAL","message":"boom"}}`))
	})

	_, err := client.Lookup(context.Background(), "社子網球場")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAPIKeyNotFound)
}

func TestLookupFillsMissingURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": `{"address":"somewhere","url":""}`},
				}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	addr, err := client.Lookup(context.Background(), "社子網球場")
	require.NoError(t, err)
	assert.Contains(t, addr.URL, "google.com/maps/search")
}

func TestFallback(t *testing.T) {
	addr := Fallback("美堤網球場")
	assert.Equal(t, "美堤網球場", addr.Address)
	assert.Contains(t, addr.URL, "https://www.google.com/maps/search/?api=1&query=")
}
