package cache

import "github.com/vvuk/angle/types"

// TypeKey packs the five identifying attributes of a descriptor into one
// comparable value, one byte per component. Each enum is uint8-backed,
// so a component can never exceed its byte: an enum that outgrew 255
// values would fail to compile in the types package before it could
// truncate here. Equal attribute tuples always produce equal keys.
type TypeKey uint64

func makeTypeKey(basic types.BasicType, precision types.Precision, qualifier types.Qualifier, primarySize, secondarySize uint8) TypeKey {
	return TypeKey(uint64(basic) |
		uint64(precision)<<8 |
		uint64(qualifier)<<16 |
		uint64(primarySize)<<24 |
		uint64(secondarySize)<<32)
}
