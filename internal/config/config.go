// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultOutput          = "super_productivity_import.json"
	DefaultMaxAnomalyRatio = 1.0
)

// Config holds the full configuration for gt2sp. The conversion core
// never reads flags or files itself; the CLI resolves everything here
// and passes plain values in.
type Config struct {
	// Output is the path the import document is written to.
	Output string `toml:"output"`

	// Verbose enables per-list progress and the anomaly summary.
	Verbose bool `toml:"verbose"`

	// ValidateOutput runs the consistency check on the produced
	// document before writing it.
	ValidateOutput bool `toml:"validate"`

	// MaxAnomalyRatio aborts a conversion when the share of anomalous
	// tasks exceeds it. 1.0 means never abort.
	MaxAnomalyRatio float64 `toml:"max_anomaly_ratio"`

	// KeepDeleted converts deleted and hidden tasks instead of
	// skipping them.
	KeepDeleted bool `toml:"keep_deleted"`

	// ThemeColor overrides the theme color converted projects get.
	// Empty means the converter default (Google blue).
	ThemeColor string `toml:"theme_color"`

	// UI selects an output mode for reports ("tui" or empty).
	UI string `toml:"ui"`

	// Run-specific values, never persisted in config files.
	DryRun    bool   `toml:"-"`
	InputFile string `toml:"-"`
}
