package repository

import (
	"database/sql"
	"fmt"

	"github.com/razorspoint/timeline-backend-go/internal/database"
	"github.com/razorspoint/timeline-backend-go/internal/models"
)

// ReportRepository handles database operations for analysis reports
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create persists a report and its visits atomically, setting the IDs
func (r *ReportRepository) Create(report *models.AnalysisReport) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			INSERT INTO analysis_reports
				(target_year, cost_per_km, profile, segments_total, segments_matched,
				 segments_skipped, routing_fallbacks, distinct_days)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			report.TargetYear, report.CostPerKm, report.Profile,
			report.Stats.SegmentsTotal, report.Stats.SegmentsMatched,
			report.Stats.SegmentsSkipped, report.Stats.RoutingFallbacks,
			report.Stats.DistinctDays)
		if err != nil {
			return fmt.Errorf("failed to insert report: %w", err)
		}

		report.ID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read inserted report ID: %w", err)
		}

		for i := range report.Visits {
			v := &report.Visits[i]
			v.ReportID = report.ID

			res, err := tx.Exec(`
				INSERT INTO visits (report_id, date, location_name, address, travel_reason, distance_km, cost)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				v.ReportID, v.Date, v.LocationName, v.Address, v.TravelReason, v.DistanceKm, v.Cost)
			if err != nil {
				return fmt.Errorf("failed to insert visit for %s: %w", v.Date, err)
			}
			if v.ID, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("failed to read inserted visit ID: %w", err)
			}
		}

		return nil
	})
}

// List returns stored reports, newest first, without their visits
func (r *ReportRepository) List(limit, offset int) ([]models.AnalysisReport, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(`
		SELECT id, target_year, cost_per_km, profile, segments_total, segments_matched,
		       segments_skipped, routing_fallbacks, distinct_days, created_at
		FROM analysis_reports
		ORDER BY id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []models.AnalysisReport
	for rows.Next() {
		var rep models.AnalysisReport
		err := rows.Scan(&rep.ID, &rep.TargetYear, &rep.CostPerKm, &rep.Profile,
			&rep.Stats.SegmentsTotal, &rep.Stats.SegmentsMatched,
			&rep.Stats.SegmentsSkipped, &rep.Stats.RoutingFallbacks,
			&rep.Stats.DistinctDays, &rep.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

// GetByID returns one report including its visits, ordered by date
func (r *ReportRepository) GetByID(id int64) (*models.AnalysisReport, error) {
	var rep models.AnalysisReport
	err := r.db.QueryRow(`
		SELECT id, target_year, cost_per_km, profile, segments_total, segments_matched,
		       segments_skipped, routing_fallbacks, distinct_days, created_at
		FROM analysis_reports WHERE id = ?`, id).
		Scan(&rep.ID, &rep.TargetYear, &rep.CostPerKm, &rep.Profile,
			&rep.Stats.SegmentsTotal, &rep.Stats.SegmentsMatched,
			&rep.Stats.SegmentsSkipped, &rep.Stats.RoutingFallbacks,
			&rep.Stats.DistinctDays, &rep.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report %d: %w", id, err)
	}

	rows, err := r.db.Query(`
		SELECT id, report_id, date, location_name, address, travel_reason, distance_km, cost
		FROM visits WHERE report_id = ? ORDER BY date`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits for report %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v models.Visit
		err := rows.Scan(&v.ID, &v.ReportID, &v.Date, &v.LocationName,
			&v.Address, &v.TravelReason, &v.DistanceKm, &v.Cost)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		rep.Visits = append(rep.Visits, v)
	}

	return &rep, rows.Err()
}
