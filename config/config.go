package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backend selectors for the native event repository.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// Apify event-discovery source. An empty token is allowed: the feed
	// degrades to the fallback data set instead of failing startup.
	ApifyAPIToken string
	ApifyActorID  string

	// Native event storage. StoreMemory is the default; StorePostgres keeps
	// the same repository contract on top of DATABASE_URL.
	EventStore string
	DBUrl      string

	FeedCacheTTL       time.Duration
	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables.
// It attempts to load a .env file first when not in production; in production
// we rely on system environment variables only.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		Port:          os.Getenv("PORT"),
		ApifyAPIToken: os.Getenv("APIFY_API_TOKEN"),
		ApifyActorID:  os.Getenv("APIFY_ACTOR_ID"),
		EventStore:    os.Getenv("EVENT_STORE"),
		DBUrl:         os.Getenv("DATABASE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ApifyActorID == "" {
		cfg.ApifyActorID = "r5gMxLV2rOF3J1fxu"
	}
	if cfg.EventStore == "" {
		cfg.EventStore = StoreMemory
	}

	cfg.FeedCacheTTL = 5 * time.Minute
	if s := os.Getenv("FEED_CACHE_TTL_SECONDS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			cfg.FeedCacheTTL = time.Duration(v) * time.Second
		}
	}

	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
