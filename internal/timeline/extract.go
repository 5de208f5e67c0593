package timeline

import (
	"time"

	"github.com/razorspoint/timeline-backend-go/internal/models"
)

// Candidates holds everything a single segment can contribute to
// matching: the coordinates that parsed and the calendar day the
// segment belongs to. Date is empty when neither timestamp parsed.
type Candidates struct {
	Coords []models.Coordinate
	Date   string // YYYY-MM-DD
	Year   int
}

// ExtractCandidates probes a segment's coordinate slots in a fixed
// order: the visit place, then the activity start and end, then the
// path points. Every slot is optional and strings that fail to parse
// are skipped.
func ExtractCandidates(seg models.TimelineSegment) Candidates {
	var out Candidates

	if seg.Visit != nil && seg.Visit.TopCandidate != nil && seg.Visit.TopCandidate.PlaceLocation != nil {
		if c, ok := ParseLatLng(seg.Visit.TopCandidate.PlaceLocation.LatLng); ok {
			out.Coords = append(out.Coords, c)
		}
	}

	if seg.Activity != nil {
		if seg.Activity.Start != nil {
			if c, ok := ParseLatLng(seg.Activity.Start.LatLng); ok {
				out.Coords = append(out.Coords, c)
			}
		}
		if seg.Activity.End != nil {
			if c, ok := ParseLatLng(seg.Activity.End.LatLng); ok {
				out.Coords = append(out.Coords, c)
			}
		}
	}

	for _, p := range seg.TimelinePath {
		if c, ok := ParseLatLng(p.Point); ok {
			out.Coords = append(out.Coords, c)
		}
	}

	if t, ok := parseTimestamp(seg.StartTime); ok {
		out.Date = t.Format("2006-01-02")
		out.Year = t.Year()
	} else if t, ok := parseTimestamp(seg.EndTime); ok {
		out.Date = t.Format("2006-01-02")
		out.Year = t.Year()
	}

	return out
}

// parseTimestamp accepts the RFC3339 timestamps exports carry, with
// or without fractional seconds. The offset is kept as written; the
// calendar day is taken from the export's own local time.
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000-07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
