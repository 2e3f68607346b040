// Restaurants Core - restaurant directory service
//
// This is the main entry point for the Restaurants Core application: an
// HTTP JSON API over a MongoDB-backed restaurant collection with Basic-auth
// gating and embedded interactive documentation.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/forkline/restaurants-core/internal/api"
	"github.com/forkline/restaurants-core/internal/auth"
	"github.com/forkline/restaurants-core/internal/infrastructure/config"
	"github.com/forkline/restaurants-core/internal/infrastructure/logging"
	"github.com/forkline/restaurants-core/internal/infrastructure/mongodb"
	"github.com/forkline/restaurants-core/internal/restaurant"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	hashPassword := flag.String("hash-password", "",
		"print the Argon2id hash of the given password for auth.password_hash, then exit")
	flag.Parse()

	if *hashPassword != "" {
		if err := printPasswordHash(os.Stdout, *hashPassword); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Restaurants Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Connect to the document store
	store, err := mongodb.Connect(ctx, mongodb.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		return fmt.Errorf("connecting to mongodb: %w", err)
	}
	defer func() {
		log.Info("disconnecting from mongodb")
		if closeErr := store.Close(context.Background()); closeErr != nil {
			log.Error("error disconnecting from mongodb", "error", closeErr)
		}
	}()
	log.Info("mongodb connected", "database", cfg.Mongo.Database)

	// Repository over the restaurants collection
	repo := restaurant.NewMongoRepository(store.Collection(cfg.Mongo.Collection))

	// Credential verifier for the Basic-auth gate
	var verifier auth.Verifier
	if cfg.Auth.PasswordHash != "" {
		verifier = auth.NewHashedVerifier(cfg.Auth.Username, cfg.Auth.PasswordHash)
	} else {
		verifier = auth.NewStaticVerifier(cfg.Auth.Username, cfg.Auth.Password)
	}

	// API server
	server, err := api.New(api.Deps{
		Config:   cfg.API,
		Auth:     cfg.Auth,
		Docs:     cfg.Docs,
		Logger:   log,
		Repo:     repo,
		Verifier: verifier,
		Store:    store,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server started", "host", cfg.API.Host, "port", cfg.API.Port)

	// Post-startup verification of both components
	if err := healthCheck(ctx, store, server); err != nil {
		return fmt.Errorf("post-startup health check: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls will run in reverse order:
	// 1. API server (drain in-flight requests)
	// 2. MongoDB client

	log.Info("Restaurants Core stopped")
	return nil
}

// printPasswordHash writes the Argon2id hash of password to w.
// The output is suitable for the auth.password_hash config field.
func printPasswordHash(w io.Writer, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	fmt.Fprintln(w, hash)
	return nil
}

// healthCheck verifies the store and API server after startup.
func healthCheck(ctx context.Context, store *mongodb.Client, server *api.Server) error {
	if err := store.HealthCheck(ctx); err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}
	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// getConfigPath returns the configuration file path.
// Uses RESTAURANTS_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("RESTAURANTS_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
