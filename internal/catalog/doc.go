// Package catalog defines the product model and the client for the remote
// catalog service.
//
// The remote service is read-only and unauthenticated. Its wire format uses
// numeric product ids; the client converts them to strings so that locally
// created products (which carry a "local-" prefixed id) share one id space.
// Every fetched record is tagged OriginRemote.
//
// Fetch failures are never fatal: list operations log and return empty
// slices so callers fall back to whatever is already resident. Only
// FetchByID surfaces an error, because its callers need to distinguish a
// missing product from a transient failure.
package catalog
