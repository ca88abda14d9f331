package types

//go:generate go run github.com/cinderc/cinder/cmd/typegen -out zz_generated.go

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Type is the type of an SSA value, packed into one byte: the low
// nibble identifies the scalar lane type, the high nibble holds log2 of
// the lane count. The zero value is Void.
//
// Lane-type codes within a family are consecutive, so halving or
// doubling a lane width is an increment on the low nibble and growing a
// vector is an addition on the high nibble.
type Type uint8

// maxCode bounds the packed encoding: the high nibble may not exceed 8,
// keeping lane counts at or below 256. Widening the lane-type nibble
// would invalidate this bound; the two must change together.
const maxCode Type = 0x90

// LaneType returns the scalar type of this type's lanes.
//
// A scalar type is a vector with one lane, so it returns itself.
func (t Type) LaneType() Type {
	return t & 0x0f
}

// Log2LaneCount returns log2 of the number of lanes, in the range 0-8.
func (t Type) Log2LaneCount() int {
	return int(t >> 4)
}

// LaneCount returns the number of lanes, 1 for scalar types.
func (t Type) LaneCount() int {
	return 1 << t.Log2LaneCount()
}

// IsScalar reports whether this is a scalar type, i.e. a vector type
// with one lane.
func (t Type) IsScalar() bool {
	return t.Log2LaneCount() == 0
}

// Log2LaneBits returns log2 of the number of bits in a lane. Void has
// no lane width and returns 0.
func (t Type) Log2LaneBits() int {
	switch t.LaneType() {
	case B1:
		return 0
	case B8, I8:
		return 3
	case B16, I16:
		return 4
	case B32, I32, F32:
		return 5
	case B64, I64, F64:
		return 6
	}
	return 0
}

// LaneBits returns the number of bits in a lane, or 0 for Void.
func (t Type) LaneBits() int {
	switch t.LaneType() {
	case B1:
		return 1
	case B8, I8:
		return 8
	case B16, I16:
		return 16
	case B32, I32, F32:
		return 32
	case B64, I64, F64:
		return 64
	}
	return 0
}

// Bits returns the total number of bits used to represent a value of
// this type, lane bits times lane count. Void occupies 0 bits.
func (t Type) Bits() int {
	return t.LaneBits() * t.LaneCount()
}

// Index returns the packed code as a dense index for tables keyed by
// type.
func (t Type) Index() int {
	return int(t)
}

// IsVoid reports whether this is the Void type.
func (t Type) IsVoid() bool {
	return t == Void
}

// IsBool reports whether this is a scalar boolean type. Boolean vectors
// do not match; use LaneType for lane-family checks.
func (t Type) IsBool() bool {
	return t >= B1 && t <= B64
}

// IsInt reports whether this is a scalar integer type. Integer vectors
// do not match.
func (t Type) IsInt() bool {
	return t >= I8 && t <= I64
}

// IsFloat reports whether this is a scalar floating point type. Float
// vectors do not match.
func (t Type) IsFloat() bool {
	return t == F32 || t == F64
}

// HalfWidth returns a type with the same number of lanes but lanes of
// half the bit width. The second result is false when no narrower width
// class exists in the lane type's family (B8, B1, I8, F32, Void).
func (t Type) HalfWidth() (Type, bool) {
	var lane Type
	switch l := t.LaneType(); {
	case l >= B16 && l <= B64:
		lane = l - 1
	case l >= I16 && l <= I64:
		lane = l - 1
	case l == F64:
		lane = F32
	default:
		return Void, false
	}
	return lane | t&0xf0, true
}

// DoubleWidth returns a type with the same number of lanes but lanes of
// twice the bit width. The second result is false at the top of each
// family (B64, I64, F64) and for Void.
func (t Type) DoubleWidth() (Type, bool) {
	var lane Type
	switch l := t.LaneType(); {
	case l >= B8 && l <= B32:
		lane = l + 1
	case l >= I8 && l <= I32:
		lane = l + 1
	case l == F32:
		lane = F64
	default:
		return Void, false
	}
	return lane | t&0xf0, true
}

// By returns a vector type with n times as many lanes as this type. A
// scalar input becomes an n-lane vector of that scalar.
//
// The second result is false when n is not a power of two, when the
// type has no lane width (Void), or when the result would exceed 256
// lanes.
func (t Type) By(n int) (Type, bool) {
	if t.LaneBits() == 0 || n <= 0 || n&(n-1) != 0 {
		return Void, false
	}
	log2 := bits.TrailingZeros(uint(n))
	code := int(t) + log2<<4
	if code >= int(maxCode) {
		return Void, false
	}
	return Type(code), true
}

// HalfVector returns a vector type with half the number of lanes. The
// second result is false for scalar types.
func (t Type) HalfVector() (Type, bool) {
	if t.IsScalar() {
		return Void, false
	}
	return t - 0x10, true
}

// AsBoolPedantic returns a type with the same number of lanes, each
// lane replaced by the boolean type of the same width. Scalars convert
// to the multi-bit boolean of their width; Void converts to B1.
func (t Type) AsBoolPedantic() Type {
	var lane Type
	switch l := t.LaneType(); l {
	case B8, I8:
		lane = B8
	case B16, I16:
		lane = B16
	case B32, I32, F32:
		lane = B32
	case B64, I64, F64:
		lane = B64
	default:
		lane = B1
	}
	return lane | t&0xf0
}

// AsBool returns a type with the same number of lanes, each lane
// replaced by a boolean.
//
// Scalars all convert to B1, which is what control flow wants. Vectors
// keep their lane width so comparison masks stay lane-for-lane
// compatible with their operands.
func (t Type) AsBool() Type {
	if t.IsScalar() {
		return B1
	}
	return t.AsBoolPedantic()
}

// String renders the type in IR text form: "void", "b1", "i32", "f64",
// "i32x4". It panics on a code that no catalog constant or derived
// operation can produce; such a value was never legitimately
// constructed.
func (t Type) String() string {
	switch {
	case t.IsVoid():
		return "void"
	case t.IsBool():
		return "b" + strconv.Itoa(t.LaneBits())
	case t.IsInt():
		return "i" + strconv.Itoa(t.LaneBits())
	case t.IsFloat():
		return "f" + strconv.Itoa(t.LaneBits())
	case !t.IsScalar():
		return t.LaneType().String() + "x" + strconv.Itoa(t.LaneCount())
	}
	panic(fmt.Sprintf("invalid type code 0x%02x", uint8(t)))
}

// GoString renders the type as its qualified constant name, "types.I32"
// or "types.B32X4". Like String, it panics on a malformed code.
func (t Type) GoString() string {
	switch {
	case t.IsVoid():
		return "types.Void"
	case t.IsBool():
		return "types.B" + strconv.Itoa(t.LaneBits())
	case t.IsInt():
		return "types.I" + strconv.Itoa(t.LaneBits())
	case t.IsFloat():
		return "types.F" + strconv.Itoa(t.LaneBits())
	case !t.IsScalar():
		return t.LaneType().GoString() + "X" + strconv.Itoa(t.LaneCount())
	}
	panic(fmt.Sprintf("invalid type code 0x%02x", uint8(t)))
}

// Catalog returns every named type constant: Void, all scalars, and the
// named vector instantiations at 64, 128, 256, and 512 bits.
func Catalog() []Type {
	out := make([]Type, len(catalog))
	copy(out, catalog)
	return out
}
