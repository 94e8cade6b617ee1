// Package orders manages the back-office order collection.
//
// Orders enter the system exactly once, through the seeder: a fresh install
// with an empty order keyspace gets a batch of demonstration orders built
// from the product collection, and that batch then behaves like real
// durable data for every later session. There is no live order-placement
// pipeline, and orders are never deleted.
//
// The only mutation is SetStatus, which moves an order to any status with
// no workflow constraints and persists the change immediately.
package orders
