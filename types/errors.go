package types

import "fmt"

// KindMismatchError is returned when a value's kind does not match the
// shape requested by the decode destination.
type KindMismatchError struct {
	Found    Kind
	Expected string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cannot decode %s into %s", e.Found, e.Expected)
}

// BoundsError is returned when an integer or timestamp value does not
// fit the requested destination type.
type BoundsError struct {
	Value  int64
	Target string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cannot convert the integer %d to the target type %s", e.Value, e.Target)
}

// UnknownFieldError is returned in strict mode when a wire value carries
// a key the destination struct does not declare.
type UnknownFieldError struct {
	Field  string
	Target string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q for strict target %s", e.Field, e.Target)
}

// UnsupportedShapeError is returned for decode requests that are
// deliberately not supported, such as positional decoding from an
// unordered map.
type UnsupportedShapeError struct {
	Found Kind
	Shape string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("decoding %s as %s is not supported", e.Found, e.Shape)
}
