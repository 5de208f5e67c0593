// Package analysis runs the visit analysis over a timeline export:
// it matches recorded coordinates against the configured business
// locations and produces one dated visit per calendar day with a
// resolved travel distance and deductible cost.
package analysis

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/razorspoint/timeline-backend-go/internal/matching"
	"github.com/razorspoint/timeline-backend-go/internal/models"
	"github.com/razorspoint/timeline-backend-go/internal/routing"
	"github.com/razorspoint/timeline-backend-go/internal/timeline"
)

// Params are the inputs of one analysis run. Locations are supplied
// wholesale and treated as immutable for the duration of the run.
type Params struct {
	TargetYear int
	CostPerKm  float64
	Home       models.NamedLocation
	Businesses []models.NamedLocation
	Routing    routing.ResolverOptions
}

// AnalyzeVisits walks the export's segments in input order and
// returns the matched visits, ascending by date, together with run
// statistics. The distance cache is rebuilt from scratch on every
// call so location edits between runs always take effect; nothing is
// shared between calls.
//
// Each calendar day yields at most one visit: the first segment that
// matches a business location claims the day, later matches on the
// same day are dropped. Each segment in turn contributes at most one
// match attempt, on the first of its coordinates that hits.
func AnalyzeVisits(ctx context.Context, router routing.Router, export models.TimelineExport, p Params) ([]models.Visit, models.AnalysisStats) {
	var stats models.AnalysisStats

	segments := timeline.Segments(export)
	stats.SegmentsTotal = len(segments)
	if len(segments) == 0 {
		return []models.Visit{}, stats
	}

	// Distances are resolved up front, sequentially, before any
	// segment is looked at; matching then only reads the cache.
	cache := routing.ResolveDistances(ctx, router, p.Home.Center(), p.Businesses, p.Routing)

	visits := make([]models.Visit, 0)
	usedDays := make(map[string]bool)

	for _, seg := range segments {
		candidates := timeline.ExtractCandidates(seg)
		if len(candidates.Coords) == 0 {
			stats.SegmentsSkipped++
			continue
		}

		var matched *models.NamedLocation
		for _, coord := range candidates.Coords {
			if loc := matching.Match(coord, p.Businesses); loc != nil {
				matched = loc
				break
			}
		}
		if matched == nil {
			continue
		}
		stats.SegmentsMatched++

		// A match without a usable date, outside the target year, or
		// on an already-claimed day is dropped without error.
		if candidates.Date == "" || candidates.Year != p.TargetYear || usedDays[candidates.Date] {
			continue
		}
		usedDays[candidates.Date] = true

		distanceKm := cache.DistanceKm(matched)
		visits = append(visits, models.Visit{
			Date:         candidates.Date,
			LocationName: matched.Name,
			Address:      matched.Address,
			TravelReason: matched.TravelReason,
			DistanceKm:   distanceKm,
			// both legs of the day trip are deductible
			Cost: distanceKm * p.CostPerKm * 2,
		})
	}

	sort.Slice(visits, func(i, j int) bool {
		return visits[i].Date < visits[j].Date
	})

	stats.RoutingFallbacks = cache.Fallbacks()
	stats.DistinctDays = len(usedDays)

	log.Info().
		Int("segments", stats.SegmentsTotal).
		Int("matched", stats.SegmentsMatched).
		Int("visits", len(visits)).
		Int("routing_fallbacks", stats.RoutingFallbacks).
		Msg("Visit analysis completed")

	return visits, stats
}
