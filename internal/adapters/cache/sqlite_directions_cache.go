package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"traffic-route-service/internal/domain"
)

// SQLite-backed cache for directions responses, used when no Redis instance
// is configured. Entries carry a fetched_at timestamp checked against the
// same TTL the Redis cache uses.
type SqliteDirectionsCache struct {
	DB  *sql.DB
	now func() time.Time
}

func NewSqliteDirectionsCache(db *sql.DB) *SqliteDirectionsCache {
	return &SqliteDirectionsCache{DB: db, now: time.Now}
}

// Fetch cached routes for one lookup key; expired rows count as misses.
func (s *SqliteDirectionsCache) Get(
	ctx context.Context,
	origin string,
	destination string,
	mode string,
) ([]domain.Route, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("directions cache: db is nil")
	}

	if origin == "" || destination == "" {
		return nil, false, errors.New("get directions cache: origin and destination must not be empty")
	}

	q := `
	SELECT payload, fetched_at
	FROM directions_cache
	WHERE origin = ? AND destination = ? AND mode = ?;
	`

	var payload []byte
	var fetchedAt int64
	err := s.DB.QueryRowContext(ctx, q, origin, destination, mode).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get directions cache: query directions_cache table: %w", err)
	}

	if s.now().Unix()-fetchedAt > int64(DirectionsTTL.Seconds()) {
		return nil, false, nil
	}

	var routes []domain.Route
	if err := json.Unmarshal(payload, &routes); err != nil {
		return nil, false, fmt.Errorf("get directions cache: decode payload: %w", err)
	}

	return routes, true, nil
}

// Store routes for one lookup key, replacing any previous entry.
func (s *SqliteDirectionsCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	mode string,
	routes []domain.Route,
) error {
	if s.DB == nil {
		return errors.New("directions cache: db is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert directions cache: origin and destination must not be empty")
	}

	payload, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("insert directions cache: encode payload: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO directions_cache (
		origin,
		destination,
		mode,
		payload,
		fetched_at
	)
	VALUES (?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, mode, payload, s.now().Unix()); err != nil {
		return fmt.Errorf("insert directions cache: %w", err)
	}

	return nil
}
