package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"homeprice/internal/common/fsutil"
)

// Environment variables recognized by FromEnv.
const (
	EnvPort         = "PORT"
	EnvAddr         = "HOMEPRICE_ADDR"
	EnvArtifactsDir = "HOMEPRICE_ARTIFACTS_DIR"
	EnvModelFile    = "HOMEPRICE_MODEL_FILE"
	EnvLogLevel     = "HOMEPRICE_LOG_LEVEL"
	EnvLogFormat    = "HOMEPRICE_LOG_FORMAT"
	EnvLogFile      = "HOMEPRICE_LOG_FILE"
	EnvCacheSize    = "HOMEPRICE_CACHE_SIZE"
	EnvCORSEnabled  = "HOMEPRICE_CORS_ENABLED"
	EnvCORSOrigins  = "HOMEPRICE_CORS_ORIGINS"
)

// LoadDotEnv loads KEY=VALUE pairs from envFile into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func LoadDotEnv(envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if !fsutil.PathExists(envFile) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

// FromEnv overlays environment variables onto cfg.
// PORT is honoured for platforms that inject it; HOMEPRICE_ADDR wins when both are set.
func FromEnv(cfg Config) (Config, error) {
	if v := os.Getenv(EnvPort); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		cfg.Addr = ":" + v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvArtifactsDir); v != "" {
		cfg.ArtifactsDir = v
	}
	if v := os.Getenv(EnvModelFile); v != "" {
		cfg.ModelFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvCacheSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvCacheSize, err)
		}
		cfg.CacheSize = n
	}
	if v := os.Getenv(EnvCORSEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvCORSEnabled, err)
		}
		cfg.CORSEnabled = &b
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		cfg.CORSOrigins = SplitCSV(v)
	}
	return cfg, nil
}

// SplitCSV splits a comma-separated list, trimming blanks and dropping empty items.
func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
