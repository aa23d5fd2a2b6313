// Package cache interns type descriptors so that structurally identical
// types are allocated once and shared by pointer.
//
// The five identifying attributes of a descriptor are packed into a
// TypeKey, one byte each, and the key maps to an exclusively-owned,
// realized types.Type. The store is append-only: entries are never
// replaced or removed individually, and pointer identity is part of the
// contract: two Get calls with equal attributes return the same pointer
// for the lifetime of the cache.
//
// One mutex guards the whole of Get, from key construction through
// on-miss insertion. That makes insertion race-free by construction:
// calls are totally ordered, so at most one descriptor is ever built
// per key, and there is no duplicate to discard.
//
// Descriptor memory lives in an arena owned by the cache. Close
// releases the arena in bulk and invalidates every pointer the cache
// ever returned; there is no per-entry eviction.
//
// Besides the explicit Cache instance, the package keeps one guarded
// global instance behind Initialize, Destroy and GetType for drivers
// that bracket a whole compilation with a single cache epoch. Calling
// GetType outside such an epoch is a driver bug and panics.
package cache
