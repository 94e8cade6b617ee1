// ABOUTME: Lightweight persisted feature flags
// ABOUTME: Currently just the admin surface visibility toggle

package flags

import (
	"github.com/brightcart/storefront/internal/persist"
)

// adminAccessValue is the stored value when the admin surface is enabled.
// The flag is presence-based: disabling removes the key.
const adminAccessValue = "true"

// Flags reads and writes persisted feature flags through the gateway.
type Flags struct {
	gateway persist.Gateway
}

// New creates a Flags view over the gateway.
func New(gateway persist.Gateway) *Flags {
	return &Flags{gateway: gateway}
}

// AdminAccess reports whether the admin surface is visible.
func (f *Flags) AdminAccess() bool {
	raw, ok := f.gateway.Read(persist.KeyAdminAccess)
	return ok && string(raw) == adminAccessValue
}

// SetAdminAccess toggles the admin surface. Disabling removes the key
// entirely rather than storing a false value.
func (f *Flags) SetAdminAccess(enabled bool) {
	if enabled {
		f.gateway.Write(persist.KeyAdminAccess, []byte(adminAccessValue))
		return
	}
	f.gateway.Remove(persist.KeyAdminAccess)
}
