// ABOUTME: In-memory Gateway implementation for testing
// ABOUTME: Allows tests to run without SQLite

package persist

import "sync"

// MemoryGateway is an in-memory Gateway implementation for testing.
type MemoryGateway struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryGateway creates a new MemoryGateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		values: make(map[string][]byte),
	}
}

// Read returns the stored bytes for key.
func (m *MemoryGateway) Read(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, false
	}
	// Copy to avoid external modification
	out := make([]byte, len(value))
	copy(out, value)
	return out, true
}

// Write stores value at key.
func (m *MemoryGateway) Write(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
}

// Remove deletes the value at key.
func (m *MemoryGateway) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Close is a no-op for the in-memory gateway.
func (m *MemoryGateway) Close() error {
	return nil
}
