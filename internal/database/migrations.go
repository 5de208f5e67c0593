package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in version order; each runs at most once.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_locations",
		SQL: `
			CREATE TABLE IF NOT EXISTS locations (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE,
				kind TEXT NOT NULL CHECK (kind IN ('home', 'business')),
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				radius_km REAL NOT NULL,
				address TEXT NOT NULL DEFAULT '',
				travel_reason TEXT NOT NULL DEFAULT '',
				sort_order INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_analysis_reports",
		SQL: `
			CREATE TABLE IF NOT EXISTS analysis_reports (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				target_year INTEGER NOT NULL,
				cost_per_km REAL NOT NULL,
				profile TEXT NOT NULL,
				segments_total INTEGER NOT NULL DEFAULT 0,
				segments_matched INTEGER NOT NULL DEFAULT 0,
				segments_skipped INTEGER NOT NULL DEFAULT 0,
				routing_fallbacks INTEGER NOT NULL DEFAULT 0,
				distinct_days INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 3,
		Name:    "create_visits",
		SQL: `
			CREATE TABLE IF NOT EXISTS visits (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				report_id INTEGER NOT NULL REFERENCES analysis_reports(id) ON DELETE CASCADE,
				date TEXT NOT NULL,
				location_name TEXT NOT NULL,
				address TEXT NOT NULL DEFAULT '',
				travel_reason TEXT NOT NULL DEFAULT '',
				distance_km REAL NOT NULL,
				cost REAL NOT NULL,
				UNIQUE (report_id, date)
			)
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		log.Info().Int("version", m.Version).Str("name", m.Name).Msg("Applied migration")
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
