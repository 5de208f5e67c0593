// Package matching decides which configured business location, if
// any, a recorded coordinate belongs to.
package matching

import (
	"github.com/razorspoint/timeline-backend-go/internal/models"
	"github.com/razorspoint/timeline-backend-go/internal/spatial"
)

// Match returns the first candidate whose great-circle distance to
// the point is within its radius, or nil when none matches. The
// candidate order is the tie-break: when radii overlap, the location
// listed first wins, so callers control priority via list order.
func Match(point models.Coordinate, candidates []models.NamedLocation) *models.NamedLocation {
	for i := range candidates {
		c := &candidates[i]
		if spatial.DistanceKm(c.Lat, c.Lon, point.Lat, point.Lon) <= c.RadiusKm {
			return c
		}
	}
	return nil
}
