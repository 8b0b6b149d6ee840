package naught

import (
	"errors"
	"strconv"
)

// ErrUnrecognizedMember is matched (via errors.Is) by every UnrecognizedMemberError.
var ErrUnrecognizedMember = errors.New("naught: unrecognized member")

// UnrecognizedMemberError is returned when a member is invoked on a type that
// neither registers it nor has a catch-all fallback.
type UnrecognizedMemberError struct {
	// Type is the String() of the generated type.
	Type string
	// Member is the requested member name.
	Member string
}

// Error implements the error interface.
func (e UnrecognizedMemberError) Error() string {
	// Example: naught: undefined member "Baz" for Null<Widget>#4
	return "naught: undefined member " + strconv.Quote(e.Member) + " for " + e.Type
}

// Is reports whether target is ErrUnrecognizedMember.
func (e UnrecognizedMemberError) Is(target error) bool {
	return target == ErrUnrecognizedMember
}

// ConversionTypeError is returned by Convert when a member's result does not
// have the requested Go type.
type ConversionTypeError struct {
	Member string
	Want   string
	Got    string
}

// Error implements the error interface.
func (e ConversionTypeError) Error() string {
	return "naught: member " + strconv.Quote(e.Member) + " returned " + e.Got + ", want " + e.Want
}
