package routing

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/razorspoint/timeline-backend-go/internal/models"
	"github.com/razorspoint/timeline-backend-go/internal/spatial"
)

// ResolverOptions tune how distances are pre-resolved
type ResolverOptions struct {
	Profile string
	// RequestDelay is the pause between successive lookups, kept to
	// respect public-backend rate limits. Tests set it to zero.
	RequestDelay time.Duration
}

// DistanceCache maps location names to resolved home-to-location
// distances for exactly one analysis run. It is built before matching
// starts and not mutated afterwards except by the on-demand fallback
// path, so a run never observes a missing entry.
type DistanceCache struct {
	home      models.Coordinate
	distances map[string]float64
	fallbacks int
}

// ResolveDistances builds the distance cache for one run. Locations
// are resolved sequentially, one lookup at a time, with RequestDelay
// between them; a concurrent fan-out would trip third-party quotas.
// Every location ends up with an entry: lookups that fail are cached
// with the great-circle fallback instead.
func ResolveDistances(ctx context.Context, router Router, home models.Coordinate, locations []models.NamedLocation, opts ResolverOptions) *DistanceCache {
	cache := &DistanceCache{
		home:      home,
		distances: make(map[string]float64, len(locations)),
	}

	for i, loc := range locations {
		if i > 0 && opts.RequestDelay > 0 {
			time.Sleep(opts.RequestDelay)
		}

		result, err := router.Route(ctx, home, loc.Center(), opts.Profile)
		if err != nil {
			fallback := spatial.DistanceKm(home.Lat, home.Lon, loc.Lat, loc.Lon)
			log.Warn().
				Err(err).
				Str("location", loc.Name).
				Float64("fallback_km", fallback).
				Msg("Routing lookup failed, using great-circle distance")
			cache.distances[loc.Name] = fallback
			cache.fallbacks++
			continue
		}

		cache.distances[loc.Name] = result.DistanceMeters / 1000
	}

	return cache
}

// DistanceKm returns the cached distance for a location. A location
// that somehow missed pre-population gets the great-circle fallback
// computed, cached and returned; the read path never comes up empty.
func (c *DistanceCache) DistanceKm(loc *models.NamedLocation) float64 {
	if d, ok := c.distances[loc.Name]; ok {
		return d
	}

	d := spatial.DistanceKm(c.home.Lat, c.home.Lon, loc.Lat, loc.Lon)
	log.Warn().Str("location", loc.Name).Msg("Location missing from distance cache, computed fallback")
	c.distances[loc.Name] = d
	c.fallbacks++
	return d
}

// Fallbacks reports how many distances came from the great-circle
// fallback rather than the routing backend.
func (c *DistanceCache) Fallbacks() int {
	return c.fallbacks
}

// Len returns the number of cached entries
func (c *DistanceCache) Len() int {
	return len(c.distances)
}
