package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "streets.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedAndListStreets(t *testing.T) {
	db := newTestDB(t)

	seed := `[
		{"street_name": "University Ave", "daily_vehicle_count": 38000},
		{"street_name": "Adams Ave", "daily_vehicle_count": 9000}
	]`

	if err := SeedFromJSON(db, writeSeedFile(t, seed)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	repo := NewSqliteStreetRepository(db)
	rows, err := repo.ListStreets(context.Background())
	if err != nil {
		t.Fatalf("list streets: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Rows come back ordered by street name.
	if rows[0].StreetName != "Adams Ave" || rows[0].DailyVehicleCount != 9000 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].StreetName != "University Ave" || rows[1].DailyVehicleCount != 38000 {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestSeedReplacesExistingRows(t *testing.T) {
	db := newTestDB(t)

	if err := SeedFromJSON(db, writeSeedFile(t, `[{"street_name": "Broadway", "daily_vehicle_count": 20000}]`)); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := SeedFromJSON(db, writeSeedFile(t, `[{"street_name": "Broadway", "daily_vehicle_count": 24000}]`)); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	repo := NewSqliteStreetRepository(db)
	rows, err := repo.ListStreets(context.Background())
	if err != nil {
		t.Fatalf("list streets: %v", err)
	}

	if len(rows) != 1 || rows[0].DailyVehicleCount != 24000 {
		t.Fatalf("rows = %+v, want single Broadway row with updated count", rows)
	}
}

func TestSeedRejectsInvalidRows(t *testing.T) {
	db := newTestDB(t)

	cases := []struct {
		name string
		seed string
	}{
		{"empty name", `[{"street_name": "  ", "daily_vehicle_count": 100}]`},
		{"negative count", `[{"street_name": "Broadway", "daily_vehicle_count": -1}]`},
		{"bad json", `{"street_name": "Broadway"}`},
	}

	for _, c := range cases {
		if err := SeedFromJSON(db, writeSeedFile(t, c.seed)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
