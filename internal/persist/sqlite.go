// ABOUTME: SQLite implementation of the persistence Gateway using modernc.org/sqlite
// ABOUTME: Stores each keyspace as one row in a kv table; all failures degrade to fallbacks

package persist

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteGateway implements Gateway on a single-file SQLite database.
// Construction can fail; after that every operation is best-effort and
// logs instead of returning errors.
type SQLiteGateway struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteGateway opens (or creates) the database at path.
// Parent directories are created if needed.
func NewSQLiteGateway(path string) (*SQLiteGateway, error) {
	logger := slog.Default().With("component", "persist")

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	g := &SQLiteGateway{
		db:     db,
		logger: logger,
	}

	if err := g.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite gateway initialized", "path", path)
	return g, nil
}

// createSchema creates the kv table if it doesn't exist
func (g *SQLiteGateway) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
	`
	_, err := g.db.Exec(schema)
	return err
}

// Read returns the stored bytes for key, or (nil, false) when the key
// is absent or the read fails.
func (g *SQLiteGateway) Read(key string) ([]byte, bool) {
	var value []byte
	err := g.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		g.logger.Warn("read failed", "key", key, "error", err)
		return nil, false
	}
	return value, true
}

// Write stores value at key, replacing any previous value. Failures
// are logged and dropped.
func (g *SQLiteGateway) Write(key string, value []byte) {
	_, err := g.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		g.logger.Warn("write dropped", "key", key, "error", err)
	}
}

// Remove deletes the value at key. Removing an absent key is not an error.
func (g *SQLiteGateway) Remove(key string) {
	if _, err := g.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		g.logger.Warn("remove dropped", "key", key, "error", err)
	}
}

// Close releases the underlying database handle.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
