package angle

import "github.com/vvuk/angle/types"

// Arena hands out descriptor slots whose memory is owned in bulk:
// slots are never reclaimed individually, and Release invalidates every
// pointer the arena ever returned. pool.Arena[types.Type] is the
// standard implementation; the cache accepts any Arena so drivers can
// substitute their own allocation strategy.
type Arena interface {
	// Allocate returns a pointer to a zeroed descriptor slot.
	Allocate() *types.Type

	// Len reports how many slots have been handed out.
	Len() int

	// Release reclaims every slot at once. The arena must not be used
	// afterwards.
	Release()
}
