package cache

import (
	"sync"

	"github.com/vvuk/angle/types"
)

// The package-level instance mirrors zap's global logger: one guarded
// slot, explicit install and teardown. The mutex totally orders
// Initialize, Destroy and GetType against each other, so a GetType
// never observes a half-built or half-destroyed cache.
var (
	globalMu sync.Mutex
	global   *Cache
)

// Initialize creates the package-level cache if absent. Calling it
// again while a cache exists is a no-op: the existing instance and its
// entries are kept.
func Initialize() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		global = New()
	}
}

// Destroy closes and drops the package-level cache, releasing every
// descriptor created since Initialize. A no-op when no cache exists.
// Initialize may be called again afterwards to start a fresh epoch.
func Destroy() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		global.Close()
		global = nil
	}
}

// GetType returns the canonical descriptor from the package-level
// cache. It is only valid between Initialize and Destroy; calling it
// outside that bracket is a driver bug and panics.
func GetType(basic types.BasicType, precision types.Precision, qualifier types.Qualifier, primarySize, secondarySize uint8) *types.Type {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		panic("cache: GetType before Initialize")
	}
	return global.Get(basic, precision, qualifier, primarySize, secondarySize)
}
