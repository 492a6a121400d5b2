package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
//  1. Defaults
//  2. User config file (~/.gt2sp/gt2sp.toml or OS-specific config dir)
//  3. Project config file (gt2sp.toml or .gt2sp.toml in current directory)
//  4. Environment variables (GT2SP_*)
//  5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Output = DefaultOutput
	cfg.MaxAnomalyRatio = DefaultMaxAnomalyRatio
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("GT2SP_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("GT2SP_VERBOSE"); v != "" {
		cfg.Verbose = boolFromString(v)
	}
	if v := os.Getenv("GT2SP_VALIDATE"); v != "" {
		cfg.ValidateOutput = boolFromString(v)
	}
	if v := os.Getenv("GT2SP_KEEP_DELETED"); v != "" {
		cfg.KeepDeleted = boolFromString(v)
	}
	if v := os.Getenv("GT2SP_MAX_ANOMALY_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			cfg.MaxAnomalyRatio = f
		}
	}
	if v := os.Getenv("GT2SP_THEME_COLOR"); v != "" {
		cfg.ThemeColor = v
	}
	if v := os.Getenv("GT2SP_UI"); v != "" {
		cfg.UI = v
	}
}

// ApplyFlags registers the configuration flags on fs with cfg's current
// values as defaults and parses args into cfg. Subcommands use it so
// flags may also appear after the command word.
func ApplyFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	return parseFlags(cfg, fs, args)
}

// parseFlags defines and parses CLI flags. Flag defaults are the values
// already resolved from files and environment, so flags override
// everything.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("gt2sp", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.Output, "o", cfg.Output, "Output file path")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output file path")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Show detailed conversion information")
	fs.BoolVar(&cfg.ValidateOutput, "validate", cfg.ValidateOutput, "Check the produced document before writing")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Parse and validate without writing output")
	fs.BoolVar(&cfg.KeepDeleted, "keep-deleted", cfg.KeepDeleted, "Convert deleted and hidden tasks instead of skipping them")
	fs.Float64Var(&cfg.MaxAnomalyRatio, "max-anomaly-ratio", cfg.MaxAnomalyRatio, "Abort when the share of anomalous tasks exceeds this (1.0 = never)")
	fs.StringVar(&cfg.ThemeColor, "theme-color", cfg.ThemeColor, "Theme color for converted projects")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Report UI mode (tui)")

	return fs.Parse(args)
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
