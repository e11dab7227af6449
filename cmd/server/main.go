package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"traffic-route-service/internal/adapters/cache"
	"traffic-route-service/internal/adapters/directions"
	"traffic-route-service/internal/adapters/repositories"
	"traffic-route-service/internal/api"
	"traffic-route-service/internal/platform/metrics"
	"traffic-route-service/internal/platform/obs"
	"traffic-route-service/internal/ports"
	"traffic-route-service/internal/traffic"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, Google Directions) behind ports,
// loads the traffic reference store once, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/streets.json")
	port := getEnv("PORT", "8080")
	redisURL := os.Getenv("REDIS_URL")

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the traffic dataset on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	// The reference store is loaded once and read-only from here on.
	repo := repositories.NewSqliteStreetRepository(db)
	rows, err := repo.ListStreets(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	store := traffic.NewStore(rows)
	log.Printf("Traffic reference store loaded streets=%d", store.Len())

	collector := metrics.NewCollector()
	obs.SetOpDurations(collector.OpDuration)

	// Redis keeps directions fresh across instances; the SQLite cache is the
	// single-node fallback.
	var dirCache ports.DirectionsCache
	if strings.TrimSpace(redisURL) != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal(fmt.Errorf("parse REDIS_URL: %w", err))
		}
		dirCache = cache.NewRedisDirectionsCache(redis.NewClient(opt))
		log.Println("Directions cache backend=redis")
	} else {
		dirCache = cache.NewSqliteDirectionsCache(db)
		log.Println("Directions cache backend=sqlite")
	}

	provider, err := directions.NewGoogleDirectionsProvider(apiKey, dirCache, collector)
	if err != nil {
		log.Fatal(err)
	}

	adjuster := traffic.NewAggregator(store, nil)
	router := api.NewRouter(provider, store, adjuster, collector)

	// Timeouts are tuned for cold-cache directions lookups (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
