package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"traffic-route-service/internal/domain"
)

// SQLite-backed implementation of the StreetRepository port.
type SqliteStreetRepository struct{ DB *sql.DB }

func NewSqliteStreetRepository(db *sql.DB) *SqliteStreetRepository {
	return &SqliteStreetRepository{DB: db}
}

// Return all traffic dataset rows stored in the database.
func (s *SqliteStreetRepository) ListStreets(ctx context.Context) ([]domain.StreetRow, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite street repository: DB is nil")
	}

	query := `
	SELECT
		street_name,
		daily_vehicle_count
	FROM streets
	ORDER BY street_name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list streets: query streets table: %w", err)
	}
	defer rows.Close()

	streets := make([]domain.StreetRow, 0, 64)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("list streets: scan row: %w", err)
		}
		streets = append(streets, domain.StreetRow{StreetName: name, DailyVehicleCount: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list streets: row iteration: %w", err)
	}

	return streets, nil
}
