package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for the shared traffic dataset.
func InitSchemaPostgres(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
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

	if _, err := tx.ExecContext(ctx, createStreetsQuery); err != nil {
		return fmt.Errorf("init schema: create streets table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres dataset from a JSON seed file.
func SeedFromJSONPostgres(ctx context.Context, db *sql.DB, jsonPath string) error {
	rows, err := readSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed streets: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO streets (street_name, daily_vehicle_count)
	VALUES ($1, $2)
	ON CONFLICT (street_name) DO UPDATE
	SET daily_vehicle_count = EXCLUDED.daily_vehicle_count;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed streets: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.ExecContext(ctx, s.StreetName, s.DailyVehicleCount); err != nil {
			return fmt.Errorf("seed streets: insert street=%q: %w", s.StreetName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed streets: commit tx: %w", err)
	}

	return nil
}
