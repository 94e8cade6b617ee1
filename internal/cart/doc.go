// Package cart maintains the per-session shopping cart.
//
// The cart is a quantity ledger keyed by product id, independent of the
// merged catalog: lines snapshot the product's title, price, and image at
// insertion time and are never re-synced against later catalog changes.
// Every mutation writes through to the persistence gateway so the cart
// survives a reload, within the gateway's best-effort contract.
package cart
