// ABOUTME: Gateway interface and typed helpers for best-effort key/value persistence
// ABOUTME: Centralizes the decode-fallback contract so every caller degrades the same way

package persist

import (
	"encoding/json"
	"log/slog"
)

// Well-known keys. Each component owns exactly one key and must not
// write another component's key.
const (
	KeyProducts    = "admin_products"
	KeyOrders      = "admin_orders"
	KeyCart        = "cart_items"
	KeyAdminAccess = "admin_access"
)

// Gateway is durable key/value storage with best-effort semantics.
// Reads that fail return (nil, false); writes that fail are dropped.
// Callers must keep their own in-memory copy of any state they store
// here — the gateway is a cache, never the source of truth.
type Gateway interface {
	Read(key string) ([]byte, bool)
	Write(key string, value []byte)
	Remove(key string)
	Close() error
}

// Load reads and decodes the value at key. Any failure — missing key,
// corrupted bytes, incompatible shape — returns fallback.
func Load[T any](g Gateway, key string, fallback T) T {
	raw, ok := g.Read(key)
	if !ok {
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Default().Warn("discarding undecodable stored value", "key", key, "error", err)
		return fallback
	}
	return v
}

// Save encodes v and writes it at key. Encoding failures are logged
// and dropped, matching the gateway's write contract.
func Save[T any](g Gateway, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Default().Warn("dropping unencodable value", "key", key, "error", err)
		return
	}
	g.Write(key, raw)
}
