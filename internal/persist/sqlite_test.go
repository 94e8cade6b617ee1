// ABOUTME: Integration tests for the SQLite-backed persistence gateway
// ABOUTME: Validates durability across reopen and graceful handling of absent keys

package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestGateway creates a temporary SQLite gateway for testing.
func setupTestGateway(t *testing.T) *SQLiteGateway {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	g, err := NewSQLiteGateway(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		g.Close()
	})

	return g
}

func TestSQLiteGateway_WriteRead(t *testing.T) {
	g := setupTestGateway(t)

	g.Write("key", []byte(`{"a":1}`))

	got, ok := g.Read("key")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestSQLiteGateway_ReadMissing(t *testing.T) {
	g := setupTestGateway(t)

	_, ok := g.Read("nonexistent")
	assert.False(t, ok)
}

func TestSQLiteGateway_Overwrite(t *testing.T) {
	g := setupTestGateway(t)

	g.Write("key", []byte("first"))
	g.Write("key", []byte("second"))

	got, ok := g.Read("key")
	require.True(t, ok)
	assert.Equal(t, []byte("second"), got)
}

func TestSQLiteGateway_Remove(t *testing.T) {
	g := setupTestGateway(t)

	g.Write("key", []byte("value"))
	g.Remove("key")

	_, ok := g.Read("key")
	assert.False(t, ok)
}

func TestSQLiteGateway_SurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	g, err := NewSQLiteGateway(dbPath)
	require.NoError(t, err)
	g.Write("key", []byte("durable"))
	require.NoError(t, g.Close())

	reopened, err := NewSQLiteGateway(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Read("key")
	require.True(t, ok)
	assert.Equal(t, []byte("durable"), got)
}
