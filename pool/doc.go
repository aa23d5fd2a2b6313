// Package pool provides a slab arena for objects that live and die
// together.
//
// An Arena hands out pointers into chunked slabs it owns. Individual
// objects are never freed; Release reclaims the whole arena at once and
// invalidates every pointer it ever handed out. This matches the cache's
// descriptor lifetime: all descriptors of one compilation epoch are
// dropped together at teardown.
//
//	arena := pool.New[types.Type](0)
//	t := arena.Allocate()
//	...
//	arena.Release() // every *types.Type from this arena is now dead
//
// An Arena is not safe for concurrent use; the cache serializes access
// under its own lock.
package pool
