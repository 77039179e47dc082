package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr         string `json:"addr" yaml:"addr" toml:"addr"`
	ArtifactsDir string `json:"artifacts_dir" yaml:"artifacts_dir" toml:"artifacts_dir"`
	ColumnsFile  string `json:"columns_file" yaml:"columns_file" toml:"columns_file"`
	// ModelFile is resolved inside ArtifactsDir unless absolute. Empty means scan for model.*.
	ModelFile string `json:"model_file" yaml:"model_file" toml:"model_file"`
	// NumericColumns are the expected names of schema columns 0 and 1.
	// nil means the defaults; an explicit empty list disables the name check.
	NumericColumns []string `json:"numeric_columns" yaml:"numeric_columns" toml:"numeric_columns"`
	CacheSize      int      `json:"cache_size" yaml:"cache_size" toml:"cache_size"`
	MaxBodyBytes   int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	LogLevel       string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat      string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	LogFile        string   `json:"log_file" yaml:"log_file" toml:"log_file"`
	CORSEnabled    *bool    `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins    []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
