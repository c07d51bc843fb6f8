package staticfmt

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownVerb        = errors.New("unknown conversion verb")
	ErrTruncatedPattern   = errors.New("pattern ends with an unterminated delimiter")
	ErrArgCount           = errors.New("argument count mismatch")
	ErrArgType            = errors.New("argument type mismatch")
	ErrInvalidConversion  = errors.New("invalid conversion")
	ErrUnsupportedCatalog = errors.New("unsupported catalog format")
	ErrUnknownPattern     = errors.New("unknown pattern")
)

// VerbError reports a conversion verb with no registry entry. It unwraps to
// [ErrUnknownVerb].
type VerbError struct {
	Verb   byte
	Offset int // byte offset of the delimiter in the pattern
}

func (e *VerbError) Error() string {
	return fmt.Sprintf("unknown conversion verb %q at offset %d", e.Verb, e.Offset)
}

func (e *VerbError) Unwrap() error { return ErrUnknownVerb }

// CountError reports that the supplied argument list does not match the
// number of consuming specifiers in a pattern. It unwraps to [ErrArgCount].
type CountError struct {
	Want int
	Got  int
}

func (e *CountError) Error() string {
	direction := "too many"
	if e.Got < e.Want {
		direction = "too few"
	}
	return fmt.Sprintf("argument count mismatch: pattern takes %d arguments, got %d (%s)", e.Want, e.Got, direction)
}

func (e *CountError) Unwrap() error { return ErrArgCount }

// TypeError reports an argument whose type does not satisfy its specifier's
// requirement. It unwraps to [ErrArgType].
type TypeError struct {
	Index int // positional index of the offending argument
	Verb  byte
	Want  string // requirement description, e.g. "integer"
	Got   reflect.Type
}

func (e *TypeError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("argument type mismatch: argument %d for %%%c must be %s, got %s", e.Index, e.Verb, e.Want, got)
}

func (e *TypeError) Unwrap() error { return ErrArgType }
