package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStreetsQuery := `
	CREATE TABLE IF NOT EXISTS streets (
		street_name TEXT PRIMARY KEY,
		daily_vehicle_count INTEGER NOT NULL
	);
	`

	createDirectionsCacheQuery := `
	CREATE TABLE IF NOT EXISTS directions_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode TEXT NOT NULL,
		payload BLOB NOT NULL,
		fetched_at INTEGER NOT NULL,
		PRIMARY KEY (origin, destination, mode)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_directions_cache_fetched_at
	ON directions_cache(fetched_at);
	`

	statements := []string{
		createStreetsQuery,
		createDirectionsCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StreetSeed struct {
	StreetName        string `json:"street_name"`
	DailyVehicleCount int    `json:"daily_vehicle_count"`
}

// readSeeds loads and validates dataset rows from a JSON file.
func readSeeds(jsonPath string) ([]StreetSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed streets: read %q: %w", jsonPath, err)
	}

	var data []StreetSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed streets: parse json: %w", err)
	}

	rows := make([]StreetSeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.StreetName)
		if name == "" {
			return nil, fmt.Errorf("seed streets: item at index %d: street_name cannot be empty", i+1)
		}

		if item.DailyVehicleCount < 0 {
			return nil, fmt.Errorf(
				"seed streets: invalid daily_vehicle_count for %q: %d",
				name, item.DailyVehicleCount,
			)
		}
		rows = append(rows, StreetSeed{StreetName: name, DailyVehicleCount: item.DailyVehicleCount})
	}

	return rows, nil
}

// Populate the database with traffic dataset rows from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := readSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed streets: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO streets (
		street_name,
		daily_vehicle_count
	)
	VALUES (?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed streets: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(s.StreetName, s.DailyVehicleCount); err != nil {
			return fmt.Errorf("seed streets: insert street=%q: %w", s.StreetName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed streets: commit tx: %w", err)
	}

	return nil
}
