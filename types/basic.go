package types

// BasicType identifies the fundamental kind of a type. It is uint8-backed
// on purpose: the cache packs it into one byte of its composite key, so
// the value space can never outgrow the key width.
type BasicType uint8

const (
	Void BasicType = iota
	Float
	Int
	UInt
	Bool
	Sampler2D
	Sampler3D
	SamplerCube
	Sampler2DArray

	// BasicLast marks the end of the enumeration.
	BasicLast
)

func (b BasicType) String() string {
	switch b {
	case Void:
		return "void"
	case Float:
		return "float"
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Bool:
		return "bool"
	case Sampler2D:
		return "sampler2D"
	case Sampler3D:
		return "sampler3D"
	case SamplerCube:
		return "samplerCube"
	case Sampler2DArray:
		return "sampler2DArray"
	default:
		return "unknown"
	}
}

// IsSampler reports whether b is an opaque sampler type.
func (b BasicType) IsSampler() bool {
	return b >= Sampler2D && b <= Sampler2DArray
}

// Precision is the precision qualifier attached to a type.
type Precision uint8

const (
	PrecisionUndefined Precision = iota
	PrecisionLow
	PrecisionMedium
	PrecisionHigh

	PrecisionLast
)

func (p Precision) String() string {
	switch p {
	case PrecisionUndefined:
		return "undefined"
	case PrecisionLow:
		return "lowp"
	case PrecisionMedium:
		return "mediump"
	case PrecisionHigh:
		return "highp"
	default:
		return "unknown"
	}
}

// Qualifier is the storage/usage qualifier attached to a type.
type Qualifier uint8

const (
	QualifierNone Qualifier = iota
	QualifierTemporary
	QualifierConst
	QualifierAttribute
	QualifierUniform
	QualifierVaryingIn
	QualifierVaryingOut
	QualifierFragColor

	QualifierLast
)

func (q Qualifier) String() string {
	switch q {
	case QualifierNone:
		return "none"
	case QualifierTemporary:
		return "temporary"
	case QualifierConst:
		return "const"
	case QualifierAttribute:
		return "attribute"
	case QualifierUniform:
		return "uniform"
	case QualifierVaryingIn:
		return "varying in"
	case QualifierVaryingOut:
		return "varying out"
	case QualifierFragColor:
		return "fragment color"
	default:
		return "unknown"
	}
}
