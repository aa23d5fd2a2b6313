package types

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Type describes one fully-specified type. The five identifying
// attributes are fixed at construction; Realize computes the derived
// state once, after which the descriptor never changes.
type Type struct {
	basic         BasicType
	precision     Precision
	qualifier     Qualifier
	primarySize   uint8
	secondarySize uint8

	realized    bool
	objectSize  int
	mangled     string
	fingerprint uint64
}

// Make builds an unrealized descriptor from the five identifying
// attributes. Sizes must be in 1..4, only float types may have a
// secondary size above one, and samplers are always 1x1; violations are
// caller bugs and panic.
func Make(basic BasicType, precision Precision, qualifier Qualifier, primarySize, secondarySize uint8) Type {
	if basic >= BasicLast || precision >= PrecisionLast || qualifier >= QualifierLast {
		panic("types: enum value out of range")
	}
	if primarySize < 1 || primarySize > 4 || secondarySize < 1 || secondarySize > 4 {
		panic(fmt.Sprintf("types: size %dx%d out of range", primarySize, secondarySize))
	}
	if secondarySize > 1 && basic != Float {
		panic(fmt.Sprintf("types: %s cannot be a matrix", basic))
	}
	if basic.IsSampler() && (primarySize != 1 || secondarySize != 1) {
		panic(fmt.Sprintf("types: %s cannot have a size", basic))
	}
	return Type{
		basic:         basic,
		precision:     precision,
		qualifier:     qualifier,
		primarySize:   primarySize,
		secondarySize: secondarySize,
	}
}

// New builds and realizes a descriptor in one step, for callers that do
// not allocate through the cache's arena.
func New(basic BasicType, precision Precision, qualifier Qualifier, primarySize, secondarySize uint8) *Type {
	t := Make(basic, precision, qualifier, primarySize, secondarySize)
	t.Realize()
	return &t
}

// Realize computes the derived state: object size, mangled name and
// fingerprint. It is idempotent; the descriptor is immutable once
// realized.
func (t *Type) Realize() {
	if t.realized {
		return
	}
	t.objectSize = int(t.primarySize) * int(t.secondarySize)
	t.mangled = t.buildMangledName()

	h := xxhash.New()
	_, _ = h.WriteString(t.mangled)
	_, _ = h.Write([]byte{byte(t.precision), byte(t.qualifier)})
	t.fingerprint = h.Sum64()

	t.realized = true
}

// IsRealized reports whether Realize has run.
func (t *Type) IsRealized() bool { return t.realized }

func (t *Type) Basic() BasicType     { return t.basic }
func (t *Type) Precision() Precision { return t.precision }
func (t *Type) Qualifier() Qualifier { return t.qualifier }
func (t *Type) PrimarySize() uint8   { return t.primarySize }
func (t *Type) SecondarySize() uint8 { return t.secondarySize }

// IsScalar reports whether the type has a single component.
func (t *Type) IsScalar() bool { return t.primarySize == 1 && t.secondarySize == 1 }

// IsVector reports whether the type is a vector (Nx1, N > 1).
func (t *Type) IsVector() bool { return t.primarySize > 1 && t.secondarySize == 1 }

// IsMatrix reports whether the type is a matrix (NxM, M > 1).
func (t *Type) IsMatrix() bool { return t.secondarySize > 1 }

// ObjectSize is the total component count (rows times columns).
// Valid only after Realize.
func (t *Type) ObjectSize() int {
	t.mustRealized()
	return t.objectSize
}

// MangledName is the compact name used for overload mangling, e.g. "f1"
// for a float scalar, "f3" for vec3 and "f3x3" for mat3. Valid only
// after Realize.
func (t *Type) MangledName() string {
	t.mustRealized()
	return t.mangled
}

// Fingerprint is a 64-bit hash of the mangled name plus the precision
// and storage qualifiers, suitable as a symbol-table key. Valid only
// after Realize.
func (t *Type) Fingerprint() uint64 {
	t.mustRealized()
	return t.fingerprint
}

func (t *Type) String() string {
	if t.IsMatrix() {
		return fmt.Sprintf("%s %s %s%dx%d", t.precision, t.qualifier, t.basic, t.primarySize, t.secondarySize)
	}
	if t.IsVector() {
		return fmt.Sprintf("%s %s %s%d", t.precision, t.qualifier, t.basic, t.primarySize)
	}
	return fmt.Sprintf("%s %s %s", t.precision, t.qualifier, t.basic)
}

func (t *Type) mustRealized() {
	if !t.realized {
		panic("types: descriptor used before Realize")
	}
}

func (t *Type) buildMangledName() string {
	var prefix string
	switch t.basic {
	case Void:
		prefix = "v"
	case Float:
		prefix = "f"
	case Int:
		prefix = "i"
	case UInt:
		prefix = "u"
	case Bool:
		prefix = "b"
	case Sampler2D:
		prefix = "s2"
	case Sampler3D:
		prefix = "s3"
	case SamplerCube:
		prefix = "sC"
	case Sampler2DArray:
		prefix = "sA"
	}
	if t.secondarySize > 1 {
		return fmt.Sprintf("%s%dx%d", prefix, t.primarySize, t.secondarySize)
	}
	return fmt.Sprintf("%s%d", prefix, t.primarySize)
}
