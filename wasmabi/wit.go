package wasmabi

import (
	"fmt"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/cinderc/cinder/errors"
	"github.com/cinderc/cinder/ir/types"
)

// LowerWIT returns the IR scalar type for a WIT primitive type.
//
// The IR is sign-agnostic, so signed and unsigned widths collapse onto
// one integer class; char lowers to its i32 code point. Compound types
// (string, list, record, ...) flatten into multiple values and are not
// a single IR type, so they are rejected here.
func LowerWIT(t wit.Type) (types.Type, error) {
	switch t.(type) {
	case wit.Bool:
		return types.B1, nil
	case wit.U8, wit.S8:
		return types.I8, nil
	case wit.U16, wit.S16:
		return types.I16, nil
	case wit.U32, wit.S32, wit.Char:
		return types.I32, nil
	case wit.U64, wit.S64:
		return types.I64, nil
	case wit.F32:
		return types.F32, nil
	case wit.F64:
		return types.F64, nil
	}
	name := witTypeName(t)
	Logger().Debug("unsupported wit type", zap.String("type", name))
	return types.Void, errors.Unsupported(errors.PhaseLower, "wit type %s", name)
}

func witTypeName(t wit.Type) string {
	switch v := t.(type) {
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}
