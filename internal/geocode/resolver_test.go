package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
)

func TestResolverSeedsFallbacks(t *testing.T) {
	r := NewResolver(nil, NewMemoryCache())

	address, mapURL := r.Address(court.Shezi)
	assert.Equal(t, court.Shezi.Name(), address)
	assert.Contains(t, mapURL, "google.com/maps/search")

	// Non-venue categories degrade the same way.
	address, _ = r.Address(court.Pending)
	assert.Equal(t, court.Pending.Name(), address)

	assert.False(t, r.NeedsCredentials())
}

func TestResolverWarmWithoutClientKeepsFallback(t *testing.T) {
	r := NewResolver(nil, NewMemoryCache())
	r.Warm(context.Background())

	address, _ := r.Address(court.Meiti)
	assert.Equal(t, court.Meiti.Name(), address)
}

func TestResolverWarmPrefersCache(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set(context.Background(), court.Shezi.Name(), Address{
		Address: "cached address",
		URL:     "https://maps.example/cached",
	})

	r := NewResolver(nil, cache)
	r.Warm(context.Background())

	address, mapURL := r.Address(court.Shezi)
	assert.Equal(t, "cached address", address)
	assert.Equal(t, "https://maps.example/cached", mapURL)
}

func TestResolverWarmResolvesAndCaches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": `{"address":"resolved address","url":"https://maps.example/r"}`},
				}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("key", "model")
	client.baseURL = server.URL
	cache := NewMemoryCache()

	r := NewResolver(client, cache)
	r.Warm(context.Background())

	address, _ := r.Address(court.Shuangyuan)
	assert.Equal(t, "resolved address", address)

	cached, ok := cache.Get(context.Background(), court.Shuangyuan.Name())
	require.True(t, ok)
	assert.Equal(t, "resolved address", cached.Address)
}

func TestResolverWarmCredentialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"status":"NOT_FOUND","message":"Requested entity was not found."}}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", "model")
	client.baseURL = server.URL

	r := NewResolver(client, NewMemoryCache())
	r.Warm(context.Background())

	assert.True(t, r.NeedsCredentials())

	// Annotations stay on the seeded fallback.
	address, _ := r.Address(court.Shezi)
	assert.Equal(t, court.Shezi.Name(), address)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	cache.Set(ctx, "key", Address{Address: "a", URL: "u"})
	addr, ok := cache.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "a", addr.Address)
}
