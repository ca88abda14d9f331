package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred.
type Phase string

const (
	PhaseLower  Phase = "lower"  // frontend type lowering
	PhaseSelect Phase = "select" // instruction selection
	PhaseEmit   Phase = "emit"   // code emission
	PhaseGen    Phase = "gen"    // catalog generation
)

// Kind categorizes the error.
type Kind string

const (
	KindUnsupported  Kind = "unsupported"
	KindTypeMismatch Kind = "type_mismatch"
	KindOutOfRange   Kind = "out_of_range"
	KindInvalidData  Kind = "invalid_data"
)

// Error is the structured error type used at the compiler's boundaries.
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	IRType  string
	SrcType string
	Detail  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.IRType != "" || e.SrcType != "" {
		b.WriteString(": ")
		if e.IRType != "" && e.SrcType != "" {
			b.WriteString("IR type ")
			b.WriteString(e.IRType)
			b.WriteString(", source type ")
			b.WriteString(e.SrcType)
		} else if e.IRType != "" {
			b.WriteString("IR type ")
			b.WriteString(e.IRType)
		} else {
			b.WriteString("source type ")
			b.WriteString(e.SrcType)
		}
	}

	if e.Detail != "" {
		if e.IRType != "" || e.SrcType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when
// their phase and kind agree.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// Unsupported creates an unsupported type or operation error.
func Unsupported(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: detail,
	}
}

// TypeMismatch creates a type mismatch error between an IR type and a
// source-language type.
func TypeMismatch(phase Phase, irType, srcType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		IRType:  irType,
		SrcType: srcType,
	}
}

// OutOfRange creates an out-of-range error.
func OutOfRange(phase Phase, detail string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("%s: %v", detail, value),
	}
}

// InvalidData creates an invalid data error.
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Wrap wraps an existing error with phase and kind context.
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
