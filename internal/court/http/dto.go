package http

import (
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
)

// CourtResponse is one venue/category entry, annotated with the resolved
// address when the geocode collaborator produced one.
type CourtResponse struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Bookable    bool   `json:"bookable"`
	Address     string `json:"address,omitempty"`
	MapURL      string `json:"map_url,omitempty"`
}

// ListCourtsResponse wraps the full court catalog. NeedsCredentials asks the
// client to surface the API-key remediation prompt.
type ListCourtsResponse struct {
	Items            []CourtResponse `json:"items"`
	NeedsCredentials bool            `json:"geocode_needs_credentials"`
}

func newCourtResponse(info court.Info, address, mapURL string) CourtResponse {
	return CourtResponse{
		Type:        string(info.Type),
		Name:        info.Name,
		Color:       info.Color,
		Description: info.Description,
		Bookable:    info.Type.Bookable(),
		Address:     address,
		MapURL:      mapURL,
	}
}
