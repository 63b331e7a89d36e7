//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestChakraWithMySQL tests the chakra CLI with a MySQL history backend.
func TestChakraWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "chakra",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/chakra?parseTime=true", host, port.Port())

	t.Setenv("CHAKRA_ANALYSIS_BACKEND", "mysql")
	t.Setenv("CHAKRA_ANALYSIS_DB_CONNECT", connStr)

	exerciseHistory(t)
}

// TestChakraWithPostgres tests the chakra CLI with a PostgreSQL history backend.
func TestChakraWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())

	t.Setenv("CHAKRA_ANALYSIS_BACKEND", "postgresql")
	t.Setenv("CHAKRA_ANALYSIS_DB_CONNECT", connStr)

	exerciseHistory(t)
}

// exerciseHistory drives the history lifecycle against whatever backend the environment selects.
func exerciseHistory(t *testing.T) {
	t.Helper()
	outDir := t.TempDir()

	// Start from an empty schema
	_, err := runChakraCommand(t, "history", "clear")
	require.NoError(t, err)

	_, err = runChakraCommand(t, "history", "migrate")
	require.NoError(t, err)

	// One full pipeline run and one summary run
	_, err = runChakraCommand(t, "--samples", "300", "--dpi", "72", "--output-dir", outDir)
	require.NoError(t, err)
	_, err = runChakraCommand(t, "summary", "--samples", "300", "--output", "json")
	require.NoError(t, err)

	status, err := runChakraCommand(t, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, status, "Connected: true")
	assert.Contains(t, status, "Total Runs: 2")

	prefix := filepath.Join(outDir, "history")
	_, err = runChakraCommand(t, "history", "export", "--output-file", prefix)
	require.NoError(t, err)
	for _, suffix := range []string{".analysis_runs.parquet", ".signal_weights.parquet"} {
		info, statErr := os.Stat(prefix + suffix)
		require.NoError(t, statErr)
		assert.Positive(t, info.Size())
	}

	_, err = runChakraCommand(t, "history", "clear")
	require.NoError(t, err)
}

func runChakraCommand(t *testing.T, args ...string) (string, error) {
	chakraPath := getChakraBinary()
	cmd := exec.Command(chakraPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return string(output), err
	}
	return string(output), nil
}
