// Package inventory maintains the merged product collection.
//
// # Architecture
//
// Two layers feed one view:
//
//   - Overlay: the durable journal of products created or edited on this
//     client, write-through to the persistence gateway.
//   - Collection: the overlay concatenated before the remote baseline
//     fetched at session start, with exactly one entry per id.
//
// Mutations dispatch by origin. Local-origin records are fully owned by the
// overlay. Remote-origin records cannot be durably changed, so edits become
// session shadows and deletes become session hides — both visible until the
// collection is rebuilt in a fresh session.
//
// # Concurrency
//
// Only Refresh suspends. Reads and mutations operate on resident state and
// never wait on the network. Overlapping refreshes resolve last-settle-wins,
// and a closed collection discards late-settling fetch results.
package inventory
