// Package types defines the value types of the IR.
//
// Every SSA value carries a Type: a single byte packing the scalar lane
// type in the low nibble and log2 of the lane count in the high nibble.
// Scalar types are vectors with one lane, so the same code covers both,
// and queries like Bits or LaneCount are plain bit arithmetic with no
// lookup tables or heap allocation.
//
// # Families
//
//   - Void: no value. Instructions without a result have type Void.
//   - Booleans: B1, B8, B16, B32, B64. All encode true or false; the
//     wider ones use redundant bits so vector comparison masks can match
//     their element width.
//   - Integers: I8, I16, I32, I64. Sign-agnostic.
//   - Floats: F32, F64. IEEE 754 single and double precision.
//
// SIMD vector types have power-of-two lane counts up to 256, with any
// boolean, integer, or float scalar as the lane type.
//
// The named constants live in zz_generated.go, produced by cmd/typegen.
// Well-formed codes are only obtained from those constants or derived
// through the methods here; Type values are never built from arbitrary
// bytes.
package types
