package iostore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &ActivityStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetStoreDBFilePath returns the path to the SQLite DB file for run storage.
func GetStoreDBFilePath() string {
	return contract.GetStoreDBFilePath()
}

// InitStore initializes the global store manager.
// backend can be empty to disable run tracking entirely.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var activityStore contract.ActivityStore
		if backend != "" {
			var err error
			activityStore, err = NewActivityStore(backend, connStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize run tracking: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.Lock()
		defer Manager.Unlock()
		Manager.activity = activityStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.activity != nil {
			_ = Manager.activity.Close()
		}
	})
}

// ClearStore clears the run tracking data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the run tracking tables.
// For NoneBackend, it does nothing.
func ClearStore(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropRunTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return dropRunTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// dropRunTables connects to the SQL database and drops the run tracking
// tables if they exist.
func dropRunTables(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for _, table := range []string{activitiesTable, runsTable} {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	return nil
}
