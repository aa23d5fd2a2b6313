// Package types provides the type-descriptor model for the translator.
//
// A Type fully describes one shading-language type by five identifying
// attributes: basic type, precision qualifier, storage qualifier, primary
// size (vector length or matrix rows) and secondary size (matrix columns).
// Scalars are 1x1, vectors are Nx1 and matrices are NxM.
//
// A Type is built in two steps:
//
//	t := types.Make(types.Float, types.PrecisionHigh, types.QualifierNone, 3, 3)
//	t.Realize()
//
// Realize computes the derived state (object size, mangled name,
// fingerprint) once; after that the descriptor is immutable and safe to
// share by pointer. New combines both steps for standalone use. The cache
// package interns realized descriptors so that structurally identical
// types are one shared instance.
package types
