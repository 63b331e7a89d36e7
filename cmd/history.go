package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/internal/iocache"
	"github.com/huangsam/chakra/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyBackend resolves the backend and connection string without the full shared setup.
func historyBackend() (schema.DatabaseBackend, string, error) {
	if err := loadConfigFile(); err != nil {
		return "", "", err
	}

	backend, err := contract.ParseBackend(viper.GetString("analysis-backend"))
	if err != nil {
		return "", "", err
	}
	connStr := viper.GetString("analysis-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// historySetup loads minimal configuration and opens the run history store.
func historySetup() error {
	backend, connStr, err := historyBackend()
	if err != nil {
		return err
	}

	if err := iocache.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}

	cfg.AnalysisBackend = backend
	cfg.AnalysisDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyRawSetup loads configuration without opening the store or creating tables,
// so migrations can run on a fresh database and clear can remove the SQLite file.
func historyRawSetup() error {
	backend, connStr, err := historyBackend()
	if err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetAnalysisDBFilePath()
	}

	cfg.AnalysisBackend = backend
	cfg.AnalysisDBConnect = connStr
	return nil
}

// historyRawSetupWrapper wraps historyRawSetup to provide PreRunE for clear and migrate.
func historyRawSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyRawSetup()
}

// historyCmd focused on run history management.
//
// Note: history subcommands skip sharedSetup. They never touch the time domain
// or the chart settings, so only the backend keys are read.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the tracked run history and its exports",
	Long: `Manage the history of pipeline runs recorded by --analysis-backend.

Each tracked run stores:
- Run metadata (timestamps, duration, domain, configuration)
- The integrated weight and influence of all seven signals

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, the default)

Subcommands:
  status  - Show run history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all history data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  chakra history status --analysis-backend sqlite

  # Export for analysis in pandas/DuckDB
  chakra history export --analysis-backend sqlite --output-file runs`,
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tracked run history",
	Long: `Delete every stored run and its signal weights.

SQLite removes the database file. MySQL and PostgreSQL drop the history tables
including the migration bookkeeping table.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  chakra history export --analysis-backend sqlite --output-file backup
  chakra history clear --analysis-backend sqlite`,
	Args:    cobra.NoArgs,
	PreRunE: historyRawSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearAnalysis(cfg.AnalysisBackend, cfg.AnalysisDBConnect, cfg.AnalysisDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run history statistics and connection details",
	Long: `Show the backend, connection state, run counts, the newest and oldest
run timestamps and the row count of each history table.

Examples:
  chakra history status --analysis-backend sqlite`,
	Args:    cobra.NoArgs,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetAnalysisStore()
		if store == nil {
			iocache.PrintAnalysisStatus(os.Stdout, schema.AnalysisStatus{Backend: string(schema.NoneBackend)})
			return
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run history status", err)
		}
		iocache.PrintAnalysisStatus(os.Stdout, status)
	},
}

// historyExportCmd exports run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all stored runs to two Parquet files sharing the --output-file prefix:

  <prefix>.analysis_runs.parquet   one row per run
  <prefix>.signal_weights.parquet  one row per run and signal

Requires: --output-file parameter

Examples:
  chakra history export --analysis-backend sqlite --output-file chakra
  duckdb -c "SELECT signal_name, avg(influence) FROM 'chakra.signal_weights.parquet' GROUP BY 1"`,
	Args:    cobra.NoArgs,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteAnalysisExport(os.Stdout, iocache.Manager.GetAnalysisStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the run history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  chakra history migrate --analysis-backend sqlite

  # Migrate to specific version
  chakra history migrate --analysis-backend sqlite --target-version 2

  # Roll back every migration
  chakra history migrate --analysis-backend sqlite --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: historyRawSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateAnalysis(cfg.AnalysisBackend, cfg.AnalysisDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
