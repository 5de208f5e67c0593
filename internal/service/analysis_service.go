package service

import (
	"context"
	"fmt"
	"time"

	"github.com/razorspoint/timeline-backend-go/internal/analysis"
	"github.com/razorspoint/timeline-backend-go/internal/models"
	"github.com/razorspoint/timeline-backend-go/internal/routing"
)

// ReportRepository interface for dependency injection
type ReportRepository interface {
	Create(report *models.AnalysisReport) error
	List(limit, offset int) ([]models.AnalysisReport, error)
	GetByID(id int64) (*models.AnalysisReport, error)
}

// AnalysisDefaults carry the configured fallbacks for per-run options
type AnalysisDefaults struct {
	CostPerKm    float64
	Profile      string
	RequestDelay time.Duration
}

// RunRequest are the caller-supplied parameters of one analysis run.
// Zero CostPerKm and empty Profile fall back to the configured
// defaults.
type RunRequest struct {
	TargetYear int
	CostPerKm  float64
	Profile    string
}

// AnalysisService orchestrates analysis runs: it loads the configured
// locations, runs the analyzer against the uploaded export and
// persists the outcome as a report.
type AnalysisService struct {
	locations LocationRepository
	reports   ReportRepository
	router    routing.Router
	defaults  AnalysisDefaults
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(locations LocationRepository, reports ReportRepository, router routing.Router, defaults AnalysisDefaults) *AnalysisService {
	return &AnalysisService{
		locations: locations,
		reports:   reports,
		router:    router,
		defaults:  defaults,
	}
}

// Run executes one analysis over the export and stores the result.
// Serialization is not required between calls: every run builds its
// own distance cache.
func (s *AnalysisService) Run(ctx context.Context, export models.TimelineExport, req RunRequest) (*models.AnalysisReport, error) {
	if req.TargetYear < 1900 || req.TargetYear > 2200 {
		return nil, fmt.Errorf("implausible target year: %d", req.TargetYear)
	}
	if req.CostPerKm == 0 {
		req.CostPerKm = s.defaults.CostPerKm
	}
	if req.CostPerKm < 0 {
		return nil, fmt.Errorf("cost per km must not be negative")
	}
	if req.Profile == "" {
		req.Profile = s.defaults.Profile
	}

	home, err := s.locations.GetHome()
	if err != nil {
		return nil, fmt.Errorf("failed to load home location: %w", err)
	}

	businesses, err := s.locations.ListBusinesses()
	if err != nil {
		return nil, fmt.Errorf("failed to load business locations: %w", err)
	}

	visits, stats := analysis.AnalyzeVisits(ctx, s.router, export, analysis.Params{
		TargetYear: req.TargetYear,
		CostPerKm:  req.CostPerKm,
		Home:       *home,
		Businesses: businesses,
		Routing: routing.ResolverOptions{
			Profile:      req.Profile,
			RequestDelay: s.defaults.RequestDelay,
		},
	})

	report := &models.AnalysisReport{
		TargetYear: req.TargetYear,
		CostPerKm:  req.CostPerKm,
		Profile:    req.Profile,
		Stats:      stats,
		Visits:     visits,
		CreatedAt:  time.Now(),
	}

	if err := s.reports.Create(report); err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}

	return report, nil
}

// ListReports returns stored reports without visits
func (s *AnalysisService) ListReports(limit, offset int) ([]models.AnalysisReport, error) {
	return s.reports.List(limit, offset)
}

// GetReport returns one stored report including visits
func (s *AnalysisService) GetReport(id int64) (*models.AnalysisReport, error) {
	return s.reports.GetByID(id)
}
