// Package repository contains the sqlite persistence layer.
package repository

import (
	"database/sql"
	"fmt"

	"github.com/razorspoint/timeline-backend-go/internal/models"
)

// LocationRepository handles database operations for named locations
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

const locationColumns = "id, name, kind, lat, lon, radius_km, address, travel_reason, sort_order, created_at, updated_at"

// List returns all locations, home first, businesses in match order
func (r *LocationRepository) List() ([]models.NamedLocation, error) {
	query := fmt.Sprintf(`SELECT %s FROM locations ORDER BY kind = 'home' DESC, sort_order, id`, locationColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// ListBusinesses returns business locations in match-priority order
func (r *LocationRepository) ListBusinesses() ([]models.NamedLocation, error) {
	query := fmt.Sprintf(`SELECT %s FROM locations WHERE kind = 'business' ORDER BY sort_order, id`, locationColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query business locations: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// GetHome returns the configured home location
func (r *LocationRepository) GetHome() (*models.NamedLocation, error) {
	query := fmt.Sprintf(`SELECT %s FROM locations WHERE kind = 'home' LIMIT 1`, locationColumns)

	loc, err := scanLocation(r.db.QueryRow(query))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no home location configured")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query home location: %w", err)
	}
	return loc, nil
}

// GetByID returns a single location
func (r *LocationRepository) GetByID(id int64) (*models.NamedLocation, error) {
	query := fmt.Sprintf(`SELECT %s FROM locations WHERE id = ?`, locationColumns)

	loc, err := scanLocation(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("location %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query location %d: %w", id, err)
	}
	return loc, nil
}

// Create inserts a new location and sets its ID
func (r *LocationRepository) Create(loc *models.NamedLocation) error {
	query := `
		INSERT INTO locations (name, kind, lat, lon, radius_km, address, travel_reason, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.Exec(query,
		loc.Name, loc.Kind, loc.Lat, loc.Lon, loc.RadiusKm, loc.Address, loc.TravelReason, loc.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}

	loc.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted location ID: %w", err)
	}
	return nil
}

// Update overwrites an existing location
func (r *LocationRepository) Update(loc *models.NamedLocation) error {
	query := `
		UPDATE locations
		SET name = ?, kind = ?, lat = ?, lon = ?, radius_km = ?,
		    address = ?, travel_reason = ?, sort_order = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := r.db.Exec(query,
		loc.Name, loc.Kind, loc.Lat, loc.Lon, loc.RadiusKm, loc.Address, loc.TravelReason, loc.SortOrder, loc.ID)
	if err != nil {
		return fmt.Errorf("failed to update location %d: %w", loc.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("location %d not found", loc.ID)
	}
	return nil
}

// Delete removes a location
func (r *LocationRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM locations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete location %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("location %d not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocation(row rowScanner) (*models.NamedLocation, error) {
	var loc models.NamedLocation
	err := row.Scan(&loc.ID, &loc.Name, &loc.Kind, &loc.Lat, &loc.Lon, &loc.RadiusKm,
		&loc.Address, &loc.TravelReason, &loc.SortOrder, &loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func scanLocations(rows *sql.Rows) ([]models.NamedLocation, error) {
	var locations []models.NamedLocation
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, *loc)
	}
	return locations, rows.Err()
}
