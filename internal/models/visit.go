package models

import "time"

// Visit is one matched business-location visit on a calendar day.
// At most one visit exists per day within an analysis run.
type Visit struct {
	ID           int64   `json:"id,omitempty" db:"id"`
	ReportID     int64   `json:"report_id,omitempty" db:"report_id"`
	Date         string  `json:"date" db:"date"` // YYYY-MM-DD
	LocationName string  `json:"location_name" db:"location_name"`
	Address      string  `json:"address,omitempty" db:"address"`
	TravelReason string  `json:"travel_reason,omitempty" db:"travel_reason"`
	DistanceKm   float64 `json:"distance_km" db:"distance_km"`
	Cost         float64 `json:"cost" db:"cost"`
}

// AnalysisStats summarizes one analysis run. Routing fallbacks are
// counted here so degraded lookups are visible without log scraping.
type AnalysisStats struct {
	SegmentsTotal    int `json:"segments_total"`
	SegmentsMatched  int `json:"segments_matched"`
	SegmentsSkipped  int `json:"segments_skipped"`
	RoutingFallbacks int `json:"routing_fallbacks"`
	DistinctDays     int `json:"distinct_days"`
}

// AnalysisReport is a persisted analysis run
type AnalysisReport struct {
	ID         int64         `json:"id" db:"id"`
	TargetYear int           `json:"target_year" db:"target_year"`
	CostPerKm  float64       `json:"cost_per_km" db:"cost_per_km"`
	Profile    string        `json:"profile" db:"profile"`
	Stats      AnalysisStats `json:"stats"`
	Visits     []Visit       `json:"visits,omitempty"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}
