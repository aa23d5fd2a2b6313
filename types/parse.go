package types

import "fmt"

// ParseBasic maps a source-level type keyword to its BasicType.
func ParseBasic(s string) (BasicType, error) {
	switch s {
	case "void":
		return Void, nil
	case "float":
		return Float, nil
	case "int":
		return Int, nil
	case "uint":
		return UInt, nil
	case "bool":
		return Bool, nil
	case "sampler2D":
		return Sampler2D, nil
	case "sampler3D":
		return Sampler3D, nil
	case "samplerCube":
		return SamplerCube, nil
	case "sampler2DArray":
		return Sampler2DArray, nil
	}
	return 0, fmt.Errorf("unknown basic type %q", s)
}

// ParsePrecision maps a precision keyword to its Precision.
// "none" selects the undefined precision.
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "none", "undefined":
		return PrecisionUndefined, nil
	case "lowp":
		return PrecisionLow, nil
	case "mediump":
		return PrecisionMedium, nil
	case "highp":
		return PrecisionHigh, nil
	}
	return 0, fmt.Errorf("unknown precision %q", s)
}

// ParseQualifier maps a storage qualifier keyword to its Qualifier.
func ParseQualifier(s string) (Qualifier, error) {
	switch s {
	case "none":
		return QualifierNone, nil
	case "temporary":
		return QualifierTemporary, nil
	case "const":
		return QualifierConst, nil
	case "attribute":
		return QualifierAttribute, nil
	case "uniform":
		return QualifierUniform, nil
	case "in":
		return QualifierVaryingIn, nil
	case "out":
		return QualifierVaryingOut, nil
	case "fragcolor":
		return QualifierFragColor, nil
	}
	return 0, fmt.Errorf("unknown qualifier %q", s)
}
