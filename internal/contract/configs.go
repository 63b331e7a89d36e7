package contract

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/huangsam/chakra/schema"
)

// Default values for configuration.
const (
	DefaultSamples   = 1000
	DefaultStart     = 0.0
	DefaultEnd       = 10.0
	MaxSamples       = 5000 // the causal kernel is dense, so memory grows with the square
	DefaultDPI       = 300
	MinDPI           = 36
	MaxDPI           = 600
	DefaultPrecision = 2
	MaxPrecision     = 4
	DefaultOutputDir = "public/images"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	Samples int
	Start   float64
	End     float64

	OutputDir string
	DPI       int

	Precision    int
	Output       schema.OutputMode
	OutputFile   string
	ExportFormat schema.OutputMode
	Width        int // Terminal width override (0 = auto-detect)

	AnalysisBackend   schema.DatabaseBackend
	AnalysisDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in progress messages
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Samples           int     `mapstructure:"samples"`
	Start             float64 `mapstructure:"start"`
	End               float64 `mapstructure:"end"`
	OutputDir         string  `mapstructure:"output-dir"`
	DPI               int     `mapstructure:"dpi"`
	Precision         int     `mapstructure:"precision"`
	Output            string  `mapstructure:"output"`
	OutputFile        string  `mapstructure:"output-file"`
	Width             int     `mapstructure:"width"`
	AnalysisBackend   string  `mapstructure:"analysis-backend"`
	AnalysisDBConnect string  `mapstructure:"analysis-db-connect"`
	Emoji             string  `mapstructure:"emoji"`
	Color             string  `mapstructure:"color"`

	// --- Fields from exportCmd.Flags() ---
	Format string `mapstructure:"format"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateDomain(cfg, input); err != nil {
		return err
	}
	if err := validateRendering(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("analysis-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return errors.New("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return errors.New("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("analysis-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return errors.New("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return errors.New("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseBackend maps a raw backend string onto a known backend. Empty means none.
func ParseBackend(raw string) (schema.DatabaseBackend, error) {
	if strings.TrimSpace(raw) == "" {
		return schema.NoneBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid analysis backend '%s'. must be sqlite, mysql, postgresql, none", raw)
	}
	return backend, nil
}

// validateBackendConfigs validates the run history backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseBackend(input.AnalysisBackend)
	if err != nil {
		return err
	}
	cfg.AnalysisBackend = backend
	cfg.AnalysisDBConnect = input.AnalysisDBConnect
	return ValidateDatabaseConnectionString(cfg.AnalysisBackend, cfg.AnalysisDBConnect)
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 2. Export Format Validation ---
	cfg.ExportFormat = schema.OutputMode(strings.ToLower(input.Format))
	if cfg.ExportFormat == "" {
		cfg.ExportFormat = schema.CSVOut
	}
	if _, ok := schema.ValidExportModes[cfg.ExportFormat]; !ok {
		return fmt.Errorf("invalid export format '%s'. must be csv, parquet", input.Format)
	}
	if cfg.ExportFormat == schema.ParquetOut && cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet export")
	}
	return nil
}

// validateDomain checks the sampled time interval.
func validateDomain(cfg *Config, input *ConfigRawInput) error {
	if input.Samples < 2 || input.Samples > MaxSamples {
		return fmt.Errorf("samples must be between 2 and %d (received %d)", MaxSamples, input.Samples)
	}
	if math.IsNaN(input.Start) || math.IsInf(input.Start, 0) || math.IsNaN(input.End) || math.IsInf(input.End, 0) {
		return fmt.Errorf("start and end must be finite (received %v, %v)", input.Start, input.End)
	}
	if input.End <= input.Start {
		return fmt.Errorf("end must be greater than start (received start=%v end=%v)", input.Start, input.End)
	}
	cfg.Samples = input.Samples
	cfg.Start = input.Start
	cfg.End = input.End
	return nil
}

// validateRendering checks chart output settings.
func validateRendering(cfg *Config, input *ConfigRawInput) error {
	if input.DPI < MinDPI || input.DPI > MaxDPI {
		return fmt.Errorf("dpi must be between %d and %d (received %d)", MinDPI, MaxDPI, input.DPI)
	}
	cfg.DPI = input.DPI

	cfg.OutputDir = strings.TrimSpace(input.OutputDir)
	if cfg.OutputDir == "" {
		return errors.New("output-dir cannot be empty")
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
