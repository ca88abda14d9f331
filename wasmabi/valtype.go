package wasmabi

import (
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/cinderc/cinder/errors"
	"github.com/cinderc/cinder/ir/types"
)

// ValueType returns the wazero carrier type for an IR scalar type.
//
// Integers and floats of 32 bits and up map directly; narrower integers
// widen to i32. Booleans travel in the integer carrier of their width.
// Void and vector types have no carrier and return an error.
func ValueType(t types.Type) (api.ValueType, error) {
	if !t.IsScalar() {
		return 0, errors.Unsupported(errors.PhaseEmit, "vector type %s has no wasm carrier", t)
	}
	switch t {
	case types.I8, types.I16, types.I32:
		return api.ValueTypeI32, nil
	case types.I64:
		return api.ValueTypeI64, nil
	case types.F32:
		return api.ValueTypeF32, nil
	case types.F64:
		return api.ValueTypeF64, nil
	case types.B1, types.B8, types.B16, types.B32:
		return api.ValueTypeI32, nil
	case types.B64:
		return api.ValueTypeI64, nil
	}
	return 0, errors.Unsupported(errors.PhaseEmit, "type %s has no wasm carrier", t)
}

// TypeOf returns the IR type for a wazero value type.
func TypeOf(v api.ValueType) (types.Type, error) {
	switch v {
	case api.ValueTypeI32:
		return types.I32, nil
	case api.ValueTypeI64:
		return types.I64, nil
	case api.ValueTypeF32:
		return types.F32, nil
	case api.ValueTypeF64:
		return types.F64, nil
	}
	Logger().Debug("unsupported wasm value type", zap.String("type", api.ValueTypeName(v)))
	return types.Void, errors.Unsupported(errors.PhaseLower, "wasm value type %s", api.ValueTypeName(v))
}
