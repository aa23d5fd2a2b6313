// Package angle provides the canonical type-descriptor core of a shading
// language translator.
//
// Translation requests the same handful of types over and over ("the
// highp float", "a mediump vec3"). This library interns type descriptors
// so each distinct type is built once per compilation epoch and shared by
// pointer afterwards, letting callers use pointer identity for type
// compatibility checks.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct responsibilities:
//
//	angle/           Root package with the shared Arena interface
//	├── types/       Type-descriptor model: enums, derived state, mangling
//	├── pool/        Slab arena owning descriptor memory in bulk
//	├── cache/       The interning cache: composite key, store, lifecycle
//	└── cmd/typecache/  CLI front end for resolving type requests
//
// # Quick Start
//
// Own a cache explicitly, one per compilation epoch:
//
//	c := cache.New()
//	defer c.Close()
//
//	vec3 := c.Get(types.Float, types.PrecisionMedium, types.QualifierNone, 3, 1)
//	again := c.Get(types.Float, types.PrecisionMedium, types.QualifierNone, 3, 1)
//	// vec3 == again: same pointer
//
// Or use the package-level instance, bracketed by the owning driver:
//
//	cache.Initialize()
//	defer cache.Destroy()
//	mat3 := cache.GetType(types.Float, types.PrecisionHigh, types.QualifierNone, 3, 3)
//
// # Thread Safety
//
// Cache is safe for concurrent use: one mutex serializes lookup and
// insertion, so concurrent requests for the same type always resolve to
// the same descriptor. Arena and Type are not independently thread-safe;
// the cache is their sole writer.
//
// # Memory Model
//
// The cache never evicts. Every descriptor lives in the cache's arena
// and is released in bulk by Close/Destroy, which invalidates all
// previously returned pointers. Do not hold descriptors across epochs.
package angle
