// Package timeline decodes Google Timeline exports: it normalizes the
// two known export schemas into a flat segment list and recovers
// coordinates from the raw string encodings found in them.
package timeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/razorspoint/timeline-backend-go/internal/models"
)

const e7Scale = 1e7

// Exports label E7-scaled coordinates with lat/lng markers, e.g.
// "latE7:525000000,lngE7:134000000".
var (
	latE7Pattern = regexp.MustCompile(`(?:lat|latitude)E7["'\s]*[:=]\s*(-?\d+)`)
	lngE7Pattern = regexp.MustCompile(`(?:lng|longitude)E7["'\s]*[:=]\s*(-?\d+)`)
)

// ParseLatLng recovers a coordinate from one of the two raw string
// encodings found in timeline exports:
//
//  1. E7 scaled integers with lat/lng labels ("latE7:525000000,lngE7:134000000")
//  2. degree-suffixed decimals ("52.5200°, 13.4050°")
//
// The E7 form is tried first so that mixed inputs resolve the same way
// every time. Returns false for anything that matches neither encoding
// or yields a non-finite number.
func ParseLatLng(raw string) (models.Coordinate, bool) {
	if c, ok := parseE7(raw); ok {
		return c, true
	}
	return parseDegrees(raw)
}

func parseE7(raw string) (models.Coordinate, bool) {
	latMatch := latE7Pattern.FindStringSubmatch(raw)
	lngMatch := lngE7Pattern.FindStringSubmatch(raw)
	if latMatch == nil || lngMatch == nil {
		return models.Coordinate{}, false
	}

	lat, err := strconv.ParseInt(latMatch[1], 10, 64)
	if err != nil {
		return models.Coordinate{}, false
	}
	lng, err := strconv.ParseInt(lngMatch[1], 10, 64)
	if err != nil {
		return models.Coordinate{}, false
	}

	return models.Coordinate{
		Lat: float64(lat) / e7Scale,
		Lon: float64(lng) / e7Scale,
	}, true
}

func parseDegrees(raw string) (models.Coordinate, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return models.Coordinate{}, false
	}

	lat, ok := parseDegreeValue(parts[0])
	if !ok {
		return models.Coordinate{}, false
	}
	lon, ok := parseDegreeValue(parts[1])
	if !ok {
		return models.Coordinate{}, false
	}

	return models.Coordinate{Lat: lat, Lon: lon}, true
}

func parseDegreeValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "°") {
		return 0, false
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "°"))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
