// Package persist provides best-effort key/value persistence for the storefront.
//
// # Contract
//
// The Gateway interface guarantees availability over durability: reads that
// fail for any reason report a miss, and writes that fail are silently dropped
// after logging. Components keep their authoritative state in memory and treat
// the gateway as a write-through cache, so a lost write costs at most the most
// recent mutation.
//
// Typed access goes through the generic Load and Save helpers, which add JSON
// encoding and centralize the decode-fallback behavior. A corrupted stored
// value never propagates an error; callers get their fallback instead.
//
// # Keyspaces
//
// Each component owns exactly one well-known key:
//
//   - KeyProducts: the local product overlay journal
//   - KeyOrders: the seeded order collection
//   - KeyCart: the cart line list
//   - KeyAdminAccess: the admin surface visibility flag
//
// Components must not cross-write each other's keys.
//
// # Implementations
//
// SQLiteGateway stores keys as rows in a single kv table with WAL mode
// enabled. MemoryGateway backs unit tests.
package persist
