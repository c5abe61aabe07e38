// Package geocode resolves venue names to street addresses and map links
// through a generative-AI lookup. The collaborator is purely additive: every
// failure degrades to a name-based fallback and booking flow is unaffected.
package geocode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrAPIKeyNotFound signals the credential-specific failure ("requested
// entity was not found") that callers surface as a key-selection prompt
// instead of silently falling back.
var ErrAPIKeyNotFound = errors.New("geocode api key not found")

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Address is a resolved venue annotation.
type Address struct {
	Address string `json:"address"`
	URL     string `json:"url"`
}

// Fallback builds the degraded annotation for a venue: the bare name and a
// generic map-search URL.
func Fallback(venueName string) Address {
	return Address{
		Address: venueName,
		URL:     "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(venueName),
	}
}

// Client calls the generative language API for grounded address lookups.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a geocode client. model defaults to gemini-2.5-flash.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Lookup resolves a venue name to an address and map link.
func (c *Client) Lookup(ctx context.Context, venueName string) (Address, error) {
	prompt := fmt.Sprintf(
		`查詢台北市「%s」的正確地址與 Google 地圖連結。`+
			`Respond with JSON only: {"address": string, "url": string}.`, venueName)

	reqBody, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return Address{}, fmt.Errorf("marshal geocode request failed: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return Address{}, fmt.Errorf("build geocode request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Address{}, fmt.Errorf("read geocode response failed: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Address{}, fmt.Errorf("decode geocode response failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && isEntityNotFound(parsed.Error.Status, parsed.Error.Message) {
			return Address{}, ErrAPIKeyNotFound
		}
		return Address{}, fmt.Errorf("geocode api returned status %d", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return Address{}, errors.New("geocode api returned no candidates")
	}

	var addr Address
	text := parsed.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &addr); err != nil {
		return Address{}, fmt.Errorf("decode geocode candidate failed: %w", err)
	}
	if addr.Address == "" {
		return Address{}, errors.New("geocode api returned empty address")
	}
	if addr.URL == "" {
		addr.URL = Fallback(addr.Address).URL
	}
	return addr, nil
}

func isEntityNotFound(status, message string) bool {
	return status == "NOT_FOUND" ||
		strings.Contains(strings.ToLower(message), "was not found")
}
