// Package config loads build-time and runtime configuration for the
// spec ingest / codegen pipeline from the environment, following the
// env-var-plus-validated-default idiom used throughout this codebase.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds resolved configuration for a single build or run.
type Config struct {
	// SpecDir is an explicit override for the spec artifact directory.
	// Empty means "search the default candidate locations" (see
	// internal/specartifact).
	SpecDir string

	// GeneratedOutDir is where cmd/modelgen writes generated sources.
	GeneratedOutDir string

	// ResolverMaxIterations caps the resolver's fixed-point loop
	// (§4.5 "safety cap (10 iterations)").
	ResolverMaxIterations int

	// LogLevel controls the default slog handler's level when the
	// process does not configure its own logger.
	LogLevel string
}

const (
	envSpecDirPrimary  = "SYSML_SPEC_DIR"
	envSpecDirLegacy   = "MORFX_SPEC_DIR"
	envGeneratedOutDir = "SYSML_GENERATED_OUT_DIR"
	envMaxIterations   = "SYSML_RESOLVER_MAX_ITERATIONS"
	envLogLevel        = "SYSML_LOG_LEVEL"

	defaultGeneratedOutDir       = "internal/genmodel"
	defaultResolverMaxIterations = 10
	defaultLogLevel              = "info"
)

// LoadConfig loads configuration from the environment. It first loads a
// local .env file, if present, via godotenv (a no-op when the file is
// absent), so development builds can pin SYSML_SPEC_DIR without
// exporting it into the shell. SpecDir comes from SYSML_SPEC_DIR, or
// from the legacy MORFX_SPEC_DIR when the primary variable is unset or
// empty.
func LoadConfig() *Config {
	_ = godotenv.Load() // best-effort; absence of .env is not an error

	cfg := &Config{
		SpecDir:               os.Getenv(envSpecDirPrimary),
		GeneratedOutDir:       os.Getenv(envGeneratedOutDir),
		ResolverMaxIterations: defaultResolverMaxIterations,
		LogLevel:              os.Getenv(envLogLevel),
	}

	if cfg.SpecDir == "" {
		cfg.SpecDir = os.Getenv(envSpecDirLegacy)
	}
	if cfg.GeneratedOutDir == "" {
		cfg.GeneratedOutDir = defaultGeneratedOutDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if raw := os.Getenv(envMaxIterations); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.ResolverMaxIterations = n
		}
	}

	return cfg
}
