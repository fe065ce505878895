package diagnostic

import (
	"errors"
	"fmt"
)

// Error is a structural grammar failure. Name carries the offending
// declaration, reference, parameter or literal value.
type Error struct {
	Kind Kind
	// Name is the declaration, reference, parameter or literal at fault.
	Name string
	// Path locates the failure in the tree being normalized (if known).
	Path string
	// Detail is a free-form explanation.
	Detail string
}

// Errorf creates an Error with a formatted detail.
func Errorf(kind Kind, name, format string, args ...any) *Error {
	return &Error{Kind: kind, Name: name, Detail: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %q", e.Kind, e.Name)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Path != "" {
		return e.Path + ": " + msg
	}

	return msg
}

// Is matches a Kind target, so errors.Is(err, KindArityMismatch) works.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// At returns a copy of e located at path. An existing location is kept,
// since the innermost location is the most precise one.
func (e *Error) At(path string) *Error {
	if e.Path != "" || path == "" {
		return e
	}

	located := *e
	located.Path = path

	return &located
}

// KindOf extracts the Kind of err, if err wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
