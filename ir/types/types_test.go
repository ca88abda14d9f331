package types

import "testing"

var scalars = []Type{B1, B8, B16, B32, B64, I8, I16, I32, I64, F32, F64}

func TestLaneType(t *testing.T) {
	if Void.LaneType() != Void {
		t.Errorf("Void.LaneType() = %v, want Void", Void.LaneType())
	}
	for _, s := range scalars {
		if s.LaneType() != s {
			t.Errorf("%v.LaneType() = %v, want itself", s, s.LaneType())
		}
	}

	tests := []struct {
		in   Type
		want Type
	}{
		{I32X4, I32},
		{B1X64, B1},
		{F64X8, F64},
		{B16X32, B16},
	}
	for _, tc := range tests {
		if got := tc.in.LaneType(); got != tc.want {
			t.Errorf("%v.LaneType() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLaneBits(t *testing.T) {
	tests := []struct {
		in       Type
		bits     int
		log2Bits int
	}{
		{Void, 0, 0},
		{B1, 1, 0},
		{B8, 8, 3},
		{B16, 16, 4},
		{B32, 32, 5},
		{B64, 64, 6},
		{I8, 8, 3},
		{I16, 16, 4},
		{I32, 32, 5},
		{I64, 64, 6},
		{F32, 32, 5},
		{F64, 64, 6},
		{I32X4, 32, 5},
		{B1X64, 1, 0},
	}
	for _, tc := range tests {
		if got := tc.in.LaneBits(); got != tc.bits {
			t.Errorf("%#v.LaneBits() = %d, want %d", tc.in, got, tc.bits)
		}
		if got := tc.in.Log2LaneBits(); got != tc.log2Bits {
			t.Errorf("%#v.Log2LaneBits() = %d, want %d", tc.in, got, tc.log2Bits)
		}
	}
}

func TestHalfWidth(t *testing.T) {
	tests := []struct {
		in   Type
		want Type
		ok   bool
	}{
		{Void, Void, false},
		{B1, Void, false},
		{B8, Void, false},
		{B16, B8, true},
		{B32, B16, true},
		{B64, B32, true},
		{I8, Void, false},
		{I16, I8, true},
		{I32, I16, true},
		{I64, I32, true},
		{F32, Void, false},
		{F64, F32, true},
		{I32X4, I16X4, true},
		{F64X2, F32X2, true},
		{B8X16, Void, false},
	}
	for _, tc := range tests {
		got, ok := tc.in.HalfWidth()
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("%#v.HalfWidth() = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDoubleWidth(t *testing.T) {
	tests := []struct {
		in   Type
		want Type
		ok   bool
	}{
		{Void, Void, false},
		{B1, Void, false},
		{B8, B16, true},
		{B16, B32, true},
		{B32, B64, true},
		{B64, Void, false},
		{I8, I16, true},
		{I16, I32, true},
		{I32, I64, true},
		{I64, Void, false},
		{F32, F64, true},
		{F64, Void, false},
		{I32X4, I64X4, true},
		{B8X8, B16X8, true},
	}
	for _, tc := range tests {
		got, ok := tc.in.DoubleWidth()
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("%#v.DoubleWidth() = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestWidthChain(t *testing.T) {
	// i8 -> i16 -> i32 -> i64 -> nothing: no 128-bit integer class.
	want := []Type{I16, I32, I64}
	cur := I8
	for _, next := range want {
		got, ok := cur.DoubleWidth()
		if !ok || got != next {
			t.Fatalf("%v.DoubleWidth() = %v, %v, want %v", cur, got, ok, next)
		}
		cur = got
	}
	if got, ok := cur.DoubleWidth(); ok {
		t.Fatalf("%v.DoubleWidth() = %v, want no result", cur, got)
	}
}

func TestVectors(t *testing.T) {
	big, ok := F64.By(256)
	if !ok {
		t.Fatal("F64.By(256) failed")
	}
	if big.LaneBits() != 64 || big.LaneCount() != 256 || big.Bits() != 64*256 {
		t.Errorf("F64.By(256): lane bits %d, lanes %d, bits %d", big.LaneBits(), big.LaneCount(), big.Bits())
	}
	if _, ok := F64.By(512); ok {
		t.Error("F64.By(512) should exceed the 256-lane bound")
	}

	half, ok := big.HalfVector()
	if !ok || half.String() != "f64x128" {
		t.Errorf("big.HalfVector() = %v, %v, want f64x128", half, ok)
	}

	b1x2, ok := B1.By(2)
	if !ok {
		t.Fatal("B1.By(2) failed")
	}
	if s, ok := b1x2.HalfVector(); !ok || s.String() != "b1" {
		t.Errorf("b1x2.HalfVector() = %v, %v, want b1", s, ok)
	}
	if _, ok := I32.HalfVector(); ok {
		t.Error("scalar HalfVector should fail")
	}
	if _, ok := Void.HalfVector(); ok {
		t.Error("Void.HalfVector should fail")
	}

	// The generated constants match the computed vector types.
	if got, ok := I32.By(4); !ok || got != I32X4 {
		t.Errorf("I32.By(4) = %v, %v, want I32X4", got, ok)
	}
	if got, ok := F64.By(8); !ok || got != F64X8 {
		t.Errorf("F64.By(8) = %v, %v, want F64X8", got, ok)
	}
}

func TestByRejects(t *testing.T) {
	tests := []struct {
		name string
		in   Type
		n    int
	}{
		{"not a power of two", I8, 3},
		{"over 256 lanes", I8, 512},
		{"void has no lane width", Void, 4},
		{"zero lanes", I32, 0},
		{"negative lanes", I32, -4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := tc.in.By(tc.n); ok {
				t.Errorf("By(%d) = %v, want no result", tc.n, got)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	for _, tc := range []struct {
		in                        Type
		void, boolean, num, float bool
	}{
		{Void, true, false, false, false},
		{B1, false, true, false, false},
		{B64, false, true, false, false},
		{I8, false, false, true, false},
		{I64, false, false, true, false},
		{F32, false, false, false, true},
		{F64, false, false, false, true},
		// Vectors are never scalar members of a family.
		{B32X4, false, false, false, false},
		{I32X4, false, false, false, false},
		{F32X4, false, false, false, false},
	} {
		if got := tc.in.IsVoid(); got != tc.void {
			t.Errorf("%#v.IsVoid() = %v", tc.in, got)
		}
		if got := tc.in.IsBool(); got != tc.boolean {
			t.Errorf("%#v.IsBool() = %v", tc.in, got)
		}
		if got := tc.in.IsInt(); got != tc.num {
			t.Errorf("%#v.IsInt() = %v", tc.in, got)
		}
		if got := tc.in.IsFloat(); got != tc.float {
			t.Errorf("%#v.IsFloat() = %v", tc.in, got)
		}
	}
}

func TestAsBool(t *testing.T) {
	tests := []struct {
		in               Type
		asBool, pedantic Type
	}{
		{I32X4, B32X4, B32X4},
		{I32, B1, B32},
		{F64X2, B64X2, B64X2},
		{F32, B1, B32},
		{B8, B1, B8},
		{B16X8, B16X8, B16X8},
		{Void, B1, B1},
	}
	for _, tc := range tests {
		if got := tc.in.AsBool(); got != tc.asBool {
			t.Errorf("%#v.AsBool() = %#v, want %#v", tc.in, got, tc.asBool)
		}
		if got := tc.in.AsBoolPedantic(); got != tc.pedantic {
			t.Errorf("%#v.AsBoolPedantic() = %#v, want %#v", tc.in, got, tc.pedantic)
		}
	}
}

func TestFormatScalars(t *testing.T) {
	tests := []struct {
		in   Type
		want string
	}{
		{Void, "void"},
		{B1, "b1"},
		{B8, "b8"},
		{B16, "b16"},
		{B32, "b32"},
		{B64, "b64"},
		{I8, "i8"},
		{I16, "i16"},
		{I32, "i32"},
		{I64, "i64"},
		{F32, "f32"},
		{F64, "f64"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestFormatVectors(t *testing.T) {
	by := func(t2 Type, n int) Type {
		v, ok := t2.By(n)
		if !ok {
			t.Fatalf("%v.By(%d) failed", t2, n)
		}
		return v
	}

	tests := []struct {
		in   Type
		want string
	}{
		{by(B1, 8), "b1x8"},
		{by(B8, 1), "b8"},
		{by(B16, 256), "b16x256"},
		{by(by(B32, 4), 2), "b32x8"},
		{by(B64, 8), "b64x8"},
		{by(I8, 64), "i8x64"},
		{by(F64, 2), "f64x2"},
		{I32X4, "i32x4"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestGoString(t *testing.T) {
	tests := []struct {
		in   Type
		want string
	}{
		{Void, "types.Void"},
		{B32, "types.B32"},
		{I64, "types.I64"},
		{F32, "types.F32"},
		{B32X4, "types.B32X4"},
		{I8X64, "types.I8X64"},
	}
	for _, tc := range tests {
		if got := tc.in.GoString(); got != tc.want {
			t.Errorf("GoString() = %q, want %q", got, tc.want)
		}
	}
}

func TestRenderInvalidPanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic on malformed code")
				}
			}()
			f()
		})
	}

	// 0x0c..0x0f are unassigned lane-type codes.
	mustPanic("string", func() { _ = Type(0x0c).String() })
	mustPanic("gostring", func() { _ = Type(0x0f).GoString() })
}

func TestCatalogProperties(t *testing.T) {
	all := Catalog()
	if len(all) != 52 {
		t.Fatalf("catalog has %d entries, want 52", len(all))
	}

	seen := make(map[Type]bool)
	for _, typ := range all {
		if seen[typ] {
			t.Errorf("%#v appears twice in the catalog", typ)
		}
		seen[typ] = true

		if lt := typ.LaneType(); lt.LaneType() != lt {
			t.Errorf("%#v: LaneType not idempotent", typ)
		}
		if typ.Bits() != typ.LaneBits()*typ.LaneCount() {
			t.Errorf("%#v: Bits() = %d, want %d", typ, typ.Bits(), typ.LaneBits()*typ.LaneCount())
		}
		if typ.IsScalar() != (typ.LaneCount() == 1) {
			t.Errorf("%#v: IsScalar disagrees with LaneCount", typ)
		}

		if half, ok := typ.HalfWidth(); ok {
			back, ok := half.DoubleWidth()
			if !ok || back != typ {
				t.Errorf("%#v: HalfWidth then DoubleWidth = %v, %v", typ, back, ok)
			}
		}
		if double, ok := typ.DoubleWidth(); ok {
			back, ok := double.HalfWidth()
			if !ok || back != typ {
				t.Errorf("%#v: DoubleWidth then HalfWidth = %v, %v", typ, back, ok)
			}
		}

		if by4, ok := typ.By(4); ok {
			by2, ok2 := typ.By(2)
			halved, ok3 := by4.HalfVector()
			if !ok2 || !ok3 || halved != by2 {
				t.Errorf("%#v: By(4).HalfVector() = %v, want By(2) = %v", typ, halved, by2)
			}
		}
	}
}

func TestScenarioI32X4(t *testing.T) {
	v, ok := I32.By(4)
	if !ok {
		t.Fatal("I32.By(4) failed")
	}
	if v.String() != "i32x4" {
		t.Errorf("String() = %q, want i32x4", v.String())
	}
	if v.LaneBits() != 32 || v.LaneCount() != 4 || v.Bits() != 128 {
		t.Errorf("lane bits %d, lanes %d, bits %d", v.LaneBits(), v.LaneCount(), v.Bits())
	}
}

func TestScenarioBoolMask(t *testing.T) {
	// Vector comparisons produce width-matched masks; scalar conditions
	// collapse to b1.
	if got := I32X4.AsBool(); got.String() != "b32x4" {
		t.Errorf("I32X4.AsBool() = %q, want b32x4", got.String())
	}
	if got := I32.AsBool(); got.String() != "b1" {
		t.Errorf("I32.AsBool() = %q, want b1", got.String())
	}

	mask, ok := B1.By(8)
	if !ok {
		t.Fatal("B1.By(8) failed")
	}
	if got, ok := mask.HalfVector(); !ok || got.String() != "b1x4" {
		t.Errorf("b1x8.HalfVector() = %v, %v, want b1x4", got, ok)
	}
	pair, ok := B1.By(2)
	if !ok {
		t.Fatal("B1.By(2) failed")
	}
	if got, ok := pair.HalfVector(); !ok || got.String() != "b1" {
		t.Errorf("b1x2.HalfVector() = %v, %v, want b1", got, ok)
	}
}
