package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"route-preview-service/internal/adapters/cache"
	"route-preview-service/internal/adapters/geocode"
	"route-preview-service/internal/api"
	"route-preview-service/internal/config"
	"route-preview-service/internal/platform/db"
	"route-preview-service/internal/ports"
	"route-preview-service/internal/services"
)

// main is the application composition root.
// It wires the geocoding adapter (optionally behind a persistent cache)
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	geocoder, err := geocode.NewORSGeocoder(orsKey)
	if err != nil {
		log.Fatal(err)
	}

	// Lookups stay cache-free unless a backend is configured explicitly.
	lookupGeocoder, err := wireCache(geocoder)
	if err != nil {
		log.Fatal(err)
	}

	session := services.NewSession()
	router := api.NewRouter(lookupGeocoder, geocoder, session)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// wireCache decorates the geocoder with the configured cache backend.
func wireCache(geocoder ports.Geocoder) (ports.Geocoder, error) {
	backend := config.Get("GEOCODE_CACHE", "none")

	var store ports.GeocodeCache
	switch backend {
	case "none":
		return geocoder, nil
	case "sqlite":
		sqliteDB, err := openSqlite(config.Get("DB_PATH", "data/app.db"))
		if err != nil {
			return nil, err
		}
		if err := cache.InitSchema(sqliteDB); err != nil {
			return nil, err
		}
		store = cache.NewSqliteGeocodeCache(sqliteDB)
	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres cache")
		}
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, err
		}
		if err := cache.InitSchema(pg); err != nil {
			return nil, err
		}
		store = cache.NewSQLGeocodeCache(pg)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: config.Get("REDIS_ADDR", "localhost:6379"),
		})
		store = cache.NewRedisGeocodeCache(client, 24*time.Hour)
	default:
		return nil, fmt.Errorf("unknown GEOCODE_CACHE backend %q", backend)
	}

	return &geocode.CachedGeocoder{Inner: geocoder, Cache: store}, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	dbh, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := dbh.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return dbh, nil
}
