//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestPulsegenWithMySQL tests the pulsegen CLI with a MySQL backend.
func TestPulsegenWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "pulsegen",
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

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/pulsegen?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("PULSEGEN_STORE_BACKEND", "mysql")
	_ = os.Setenv("PULSEGEN_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("PULSEGEN_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("PULSEGEN_STORE_DB_CONNECT") }()

	runStoreLifecycle(t)
}

// TestPulsegenWithPostgres tests the pulsegen CLI with a PostgreSQL backend.
func TestPulsegenWithPostgres(t *testing.T) {
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

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("PULSEGEN_STORE_BACKEND", "postgresql")
	_ = os.Setenv("PULSEGEN_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("PULSEGEN_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("PULSEGEN_STORE_DB_CONNECT") }()

	runStoreLifecycle(t)
}

// runStoreLifecycle exercises the full run tracking flow against the
// configured backend: clear, generate, status, export.
func runStoreLifecycle(t *testing.T) {
	outDir, err := os.MkdirTemp("", "pulsegen-out-*")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(outDir) }()

	// Run pulsegen runs clear
	err = runPulsegenCommand(t, "runs", "clear")
	require.NoError(t, err)

	// Run pulsegen generate with a small deterministic batch
	err = runPulsegenCommand(t, "generate", "--athletes", "101,204", "--count", "2",
		"--duration", "120", "--out-dir", outDir)
	require.NoError(t, err)

	// Run pulsegen runs status
	err = runPulsegenCommand(t, "runs", "status")
	require.NoError(t, err)

	// Run pulsegen runs export
	exportBase := outDir + "/export"
	err = runPulsegenCommand(t, "runs", "export", "--output-file", exportBase)
	require.NoError(t, err)

	// Both exported datasets should exist
	_, err = os.Stat(exportBase + ".runs.parquet")
	require.NoError(t, err)
	_, err = os.Stat(exportBase + ".activities.parquet")
	require.NoError(t, err)

	// Run pulsegen runs migrate
	err = runPulsegenCommand(t, "runs", "migrate")
	require.NoError(t, err)
}
