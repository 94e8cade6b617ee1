// Package flags stores lightweight feature flags in the persistence
// gateway. The only flag today is admin surface visibility, which consumers
// check before routing to back-office screens.
package flags
