package config

const (
	DefaultAddr         = ":4000"
	DefaultArtifactsDir = "artifacts"
	DefaultColumnsFile  = "columns.json"
	DefaultCacheSize    = 1024
	DefaultMaxBodyBytes = 1 << 20
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// DefaultNumericColumns are the names the trained model uses for columns 0 and 1.
var DefaultNumericColumns = []string{"bhk", "area"}

// ApplyDefaults fills unspecified fields.
func ApplyDefaults(cfg Config) Config {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ArtifactsDir == "" {
		cfg.ArtifactsDir = DefaultArtifactsDir
	}
	if cfg.ColumnsFile == "" {
		cfg.ColumnsFile = DefaultColumnsFile
	}
	if cfg.NumericColumns == nil {
		cfg.NumericColumns = append([]string(nil), DefaultNumericColumns...)
	}
	if cfg.CacheSize < 0 {
		cfg.CacheSize = 0
	} else if cfg.CacheSize == 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.CORSEnabled == nil {
		// the web frontend is served from a different origin
		on := true
		cfg.CORSEnabled = &on
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg
}
