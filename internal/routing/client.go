// Package routing obtains travel distances between the home location
// and each configured business location. Lookups go through an
// OSRM-compatible HTTP backend and degrade to great-circle distance
// when the backend fails.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/razorspoint/timeline-backend-go/internal/models"
)

// Travel profiles understood by the routing backend
const (
	ProfileDriving = "driving"
	ProfileWalking = "walking"
	ProfileCycling = "cycling"
)

// RouteResult is a successful routing lookup
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Router performs a single routing lookup between two coordinates
type Router interface {
	Route(ctx context.Context, origin, dest models.Coordinate, profile string) (RouteResult, error)
}

// OSRMClient talks to an OSRM-compatible route service
type OSRMClient struct {
	baseURL string
	client  *http.Client
}

// NewOSRMClient creates a routing client against the given base URL,
// e.g. "https://router.project-osrm.org". Timeout bounds each request.
func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OSRMClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// osrmResponse mirrors the subset of the OSRM route response we read
type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

// Route requests a route for the given profile. Unknown profiles fall
// back to driving, which every OSRM deployment serves.
func (c *OSRMClient) Route(ctx context.Context, origin, dest models.Coordinate, profile string) (RouteResult, error) {
	switch profile {
	case ProfileDriving, ProfileWalking, ProfileCycling:
	default:
		profile = ProfileDriving
	}

	// OSRM wants lon,lat ordering
	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=false",
		c.baseURL, profile, origin.Lon, origin.Lat, dest.Lon, dest.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return RouteResult{}, fmt.Errorf("failed to build route request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return RouteResult{}, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RouteResult{}, fmt.Errorf("route service returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return RouteResult{}, fmt.Errorf("failed to decode route response: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return RouteResult{}, fmt.Errorf("no route found: %s", body.Message)
	}

	return RouteResult{
		DistanceMeters:  body.Routes[0].Distance,
		DurationSeconds: body.Routes[0].Duration,
	}, nil
}
