package generic

import (
	"errors"
	"fmt"
)

// ErrUnsupportedTypeKind matches every *UnsupportedTypeKindError via errors.Is.
var ErrUnsupportedTypeKind = errors.New("unsupported type kind")

// UnsupportedTypeKindError is returned when a type expression is not one of
// the five known variants. It means the caller built a descriptor the engine
// cannot interpret; it is never a "not assignable" verdict.
type UnsupportedTypeKindError struct {
	Type Type
}

func (e *UnsupportedTypeKindError) Error() string {
	return fmt.Sprintf("generic: unsupported type kind %T", e.Type)
}

func (e *UnsupportedTypeKindError) Is(target error) bool {
	return target == ErrUnsupportedTypeKind
}

// MalformedTypeError describes a type expression that violates a structural
// invariant, as reported by Validate.
type MalformedTypeError struct {
	Type   Type
	Reason string
}

func (e *MalformedTypeError) Error() string {
	return fmt.Sprintf("generic: malformed type %s: %s", typeString(e.Type), e.Reason)
}
