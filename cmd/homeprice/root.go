package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"homeprice/internal/artifacts"
	"homeprice/internal/config"
	"homeprice/internal/estimator"
	"homeprice/internal/logging"
	"homeprice/pkg/types"
)

var version = "dev"

// options carries flag values; only flags the user changed override the config.
type options struct {
	configPath string
	envFile    string

	artifactsDir string
	columnsFile  string
	modelFile    string
	logLevel     string
	logFormat    string
	logFile      string

	addr         string
	corsEnabled  bool
	corsOrigins  string
	cacheSize    int
	maxBodyBytes int64
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "homeprice",
		Short:         "Real-estate price estimation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (.yaml, .yml, .json, .toml)")
	pf.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading HOMEPRICE_* variables")
	pf.StringVar(&opts.artifactsDir, "artifacts-dir", config.DefaultArtifactsDir, "Directory holding columns.json and the model artifact")
	pf.StringVar(&opts.columnsFile, "columns-file", config.DefaultColumnsFile, "Column schema file, relative to --artifacts-dir")
	pf.StringVar(&opts.modelFile, "model-file", "", "Model artifact, relative to --artifacts-dir (default: scan for model.*)")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error|off")
	pf.StringVar(&opts.logFormat, "log-format", config.DefaultLogFormat, "Log format: console|json")
	pf.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file, rotated by size")

	serve := &cobra.Command{
		Use:     "serve",
		Short:   "Load artifacts and serve the HTTP API",
		Example: "  homeprice serve --addr :4000 --artifacts-dir ./artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	addServeFlags(serve, opts)
	addServeFlags(root, opts)

	regions := &cobra.Command{
		Use:   "regions",
		Short: "Print the regions known to the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd, opts)
			if err != nil {
				return err
			}
			list, err := svc.Regions()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), types.RegionsResponse{Regions: list})
		},
	}

	kinds := &cobra.Command{
		Use:   "types",
		Short: "Print the property types known to the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd, opts)
			if err != nil {
				return err
			}
			list, err := svc.Types()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), types.TypesResponse{Types: list})
		},
	}

	var bhk, area float64
	var region, propertyType string
	estimate := &cobra.Command{
		Use:     "estimate",
		Short:   "Estimate one price without starting the server",
		Example: "  homeprice estimate --bhk 2 --area 1000 --region wakad --type flat",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd, opts)
			if err != nil {
				return err
			}
			est, err := svc.Estimate(bhk, area, region, propertyType)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), types.EstimateResponse{EstimatedPrice: est.Price})
		},
	}
	estimate.Flags().Float64Var(&bhk, "bhk", 0, "Room count (BHK)")
	estimate.Flags().Float64Var(&area, "area", 0, "Area in square feet")
	estimate.Flags().StringVar(&region, "region", "", "Region name")
	estimate.Flags().StringVar(&propertyType, "type", "", "Property type")
	for _, f := range []string{"bhk", "area", "region", "type"} {
		_ = estimate.MarkFlagRequired(f)
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	root.AddCommand(serve, regions, kinds, estimate, versionCmd)
	return root
}

func addServeFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", config.DefaultAddr, "HTTP listen address, e.g. :4000 (PORT is honoured)")
	f.BoolVar(&opts.corsEnabled, "cors-enabled", true, "Enable CORS")
	f.StringVar(&opts.corsOrigins, "cors-origins", "*", "Comma-separated allowed origins")
	f.IntVar(&opts.cacheSize, "cache-size", config.DefaultCacheSize, "Memoized estimates (0 disables)")
	f.Int64Var(&opts.maxBodyBytes, "max-body-bytes", config.DefaultMaxBodyBytes, "Maximum request body size")
}

// resolveConfig layers defaults < config file < environment < changed flags.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	var cfg config.Config
	if opts.configPath != "" {
		c, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg = c
	}
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return cfg, err
	}
	cfg, err := config.FromEnv(cfg)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("artifacts-dir") {
		cfg.ArtifactsDir = opts.artifactsDir
	}
	if changed("columns-file") {
		cfg.ColumnsFile = opts.columnsFile
	}
	if changed("model-file") {
		cfg.ModelFile = opts.modelFile
	}
	if changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if cmd.Flags().Lookup("addr") != nil {
		if changed("addr") {
			cfg.Addr = opts.addr
		}
		if changed("cors-enabled") {
			v := opts.corsEnabled
			cfg.CORSEnabled = &v
		}
		if changed("cors-origins") {
			cfg.CORSOrigins = config.SplitCSV(opts.corsOrigins)
		}
		if changed("cache-size") {
			cfg.CacheSize = opts.cacheSize
			if cfg.CacheSize == 0 {
				cfg.CacheSize = -1
			}
		}
		if changed("max-body-bytes") {
			cfg.MaxBodyBytes = opts.maxBodyBytes
		}
	}
	return config.ApplyDefaults(cfg), nil
}

func newLogger(cfg config.Config, w io.Writer) (zerolog.Logger, io.Closer, error) {
	return logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile, Out: w})
}

func loaderFor(cfg config.Config) artifacts.Loader {
	return artifacts.Loader{
		Dir:            cfg.ArtifactsDir,
		ColumnsFile:    cfg.ColumnsFile,
		ModelFile:      cfg.ModelFile,
		NumericColumns: cfg.NumericColumns,
	}
}

// loadService backs the one-shot subcommands; logs go to stderr so stdout stays JSON.
func loadService(cmd *cobra.Command, opts *options) (*estimator.Service, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel == config.DefaultLogLevel {
		cfg.LogLevel = "warn"
	}
	log, closer, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	svc := estimator.NewService(log)
	if err := svc.Load(loaderFor(cfg)); err != nil {
		return nil, err
	}
	return svc, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
