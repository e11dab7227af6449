package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"traffic-route-service/internal/adapters/repositories"
	"traffic-route-service/internal/platform/db"
)

// dbtool initializes and seeds the shared Postgres traffic dataset.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := getEnv("SEED_PATH", "data/seeds/streets.json")
	ctx := context.Background()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchemaPostgres(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding traffic dataset...")
	if err := repositories.SeedFromJSONPostgres(ctx, conn, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	repo := repositories.NewSQLStreetRepository(conn)
	rows, err := repo.ListStreets(ctx)
	if err != nil {
		log.Fatalf("verify seed failed: %v", err)
	}
	log.Printf("Seeding complete streets=%d", len(rows))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
