package traffic

import (
	"errors"
	"fmt"
	"strings"

	"traffic-route-service/internal/domain"
)

// ErrInvalidInput marks structurally invalid engine input: an empty street
// lookup or a route step with negative distance/duration. Recoverable
// conditions (unknown streets, empty routes) are never surfaced as errors.
var ErrInvalidInput = errors.New("invalid input")

// Store is the in-memory street congestion reference.
//
// It is built once from dataset rows, with the same name normalization
// applied at load and lookup time, and is read-only afterwards: safe for
// unsynchronized concurrent reads from any number of request handlers.
type Store struct {
	records map[string]domain.StreetRecord
}

// NewStore builds the reference store from raw dataset rows. Level and
// multiplier are derived from the daily vehicle count here, not persisted.
// Rows whose names normalize to the same key collapse to the busier record.
func NewStore(rows []domain.StreetRow) *Store {
	records := make(map[string]domain.StreetRecord, len(rows))
	for _, row := range rows {
		key := NormalizeStreet(row.StreetName)
		if key == "" || row.DailyVehicleCount < 0 {
			continue
		}

		if prev, ok := records[key]; ok && prev.DailyVehicleCount >= row.DailyVehicleCount {
			continue
		}

		level, multiplier := classify(row.DailyVehicleCount)
		records[key] = domain.StreetRecord{
			NormalizedName:    key,
			DailyVehicleCount: row.DailyVehicleCount,
			Level:             level,
			Multiplier:        multiplier,
		}
	}

	return &Store{records: records}
}

// Lookup resolves a street name against the reference dataset.
// A miss returns ok=false with no error; only an empty or whitespace-only
// name is a contract violation.
func (s *Store) Lookup(street string) (domain.StreetRecord, bool, error) {
	if strings.TrimSpace(street) == "" {
		return domain.StreetRecord{}, false, fmt.Errorf("lookup street: %w: street must be non-empty", ErrInvalidInput)
	}

	rec, ok := s.records[NormalizeStreet(street)]
	return rec, ok, nil
}

// Len reports how many distinct normalized streets are loaded.
func (s *Store) Len() int { return len(s.records) }

// UnknownRecord is the sentinel returned to callers that want a usable
// fallback for an unseeded street: neutral multiplier, zero count.
func UnknownRecord(street string) domain.StreetRecord {
	return domain.StreetRecord{
		NormalizedName:    NormalizeStreet(street),
		DailyVehicleCount: 0,
		Level:             domain.TrafficUnknown,
		Multiplier:        1.0,
	}
}
