package convention

import "fmt"

// UnresolvedFieldError is returned by [Profile.Compose] when a required
// field produced no token and has no default.
type UnresolvedFieldError struct {
	Field string
}

func (e *UnresolvedFieldError) Error() string {
	return fmt.Sprintf("field %q unresolved: no candidate matched and no default configured", e.Field)
}

// DecodeError reports a token that could not be mapped back to a semantic
// value during unsolve. Position is the zero-based field index within the
// profile, or -1 when the error originates from a bare [Field.Unsolve]
// call.
type DecodeError struct {
	Field    string
	Position int
	Token    string
	Reason   string
}

func (e *DecodeError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("cannot decode token %q for field %q: %s", e.Token, e.Field, e.Reason)
	}
	return fmt.Sprintf("cannot decode token %q for field %q (position %d): %s",
		e.Token, e.Field, e.Position, e.Reason)
}

// TokenCountError reports a name whose separator-split segments cannot be
// assigned to the profile's fields.
type TokenCountError struct {
	Name string
	Got  int
	Want int
}

func (e *TokenCountError) Error() string {
	return fmt.Sprintf("name %q splits into %d segment(s), cannot cover %d field(s)",
		e.Name, e.Got, e.Want)
}

// Mismatch records a candidate value a field could not classify for its
// kind. Mismatches are carried on the solve result so callers can choose
// between ignoring them and treating them as fatal.
type Mismatch struct {
	Field  string
	Value  any
	Reason string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("field %q skipped candidate %v: %s", m.Field, m.Value, m.Reason)
}
