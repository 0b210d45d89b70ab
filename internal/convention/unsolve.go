package convention

import (
	"errors"
	"strings"
)

// FieldValue is one decoded entry of an unsolved name: the field name and
// its semantic value (string for Text, key string for Lookup, int for
// Integer).
type FieldValue struct {
	Field string
	Value any
}

// Unsolve decodes a composed name back into per-field semantic values, in
// field declaration order.
//
// The name is split on the separator and the resulting segments are
// assigned to fields by depth-first search, shortest consumption first:
// an Integer field consumes exactly one all-digit segment, a Lookup field
// consumes the shortest run of segments whose separator-join is a known
// token (so tokens containing the separator still decode), and a Text
// field consumes one or more segments. Optional fields may be skipped.
// Every segment must be consumed and every required field satisfied.
//
// When no assignment covers the segments, Unsolve returns a
// [TokenCountError]; when the segment count lines up but a segment fails
// its field's shape, it returns a [DecodeError] naming the field and its
// position.
func (p *Profile) Unsolve(name string) ([]FieldValue, error) {
	if len(p.fields) == 0 {
		return nil, &TokenCountError{Name: name, Got: 0, Want: 0}
	}
	if name == "" {
		return nil, &TokenCountError{Name: name, Got: 0, Want: len(p.fields)}
	}
	parts := strings.Split(name, p.separator)

	if values, ok := p.assign(parts, 0, 0, nil); ok {
		return values, nil
	}

	// Positional decode recovers the precise failure when the counts
	// line up; otherwise no per-segment blame is possible.
	if len(parts) == len(p.fields) {
		for i, f := range p.fields {
			if _, err := f.Unsolve(parts[i]); err != nil {
				var de *DecodeError
				if errors.As(err, &de) {
					return nil, &DecodeError{Field: de.Field, Position: i, Token: de.Token, Reason: de.Reason}
				}
				return nil, err
			}
		}
	}
	return nil, &TokenCountError{Name: name, Got: len(parts), Want: len(p.fields)}
}

// assign tries to fit fields[fi:] onto parts[pi:], accumulating decoded
// values. It returns the full value list on the first complete cover.
func (p *Profile) assign(parts []string, fi, pi int, acc []FieldValue) ([]FieldValue, bool) {
	if fi == len(p.fields) {
		if pi == len(parts) {
			out := make([]FieldValue, len(acc))
			copy(out, acc)
			return out, true
		}
		return nil, false
	}

	f := p.fields[fi]
	remaining := len(parts) - pi

	if remaining > 0 {
		switch f.kind {
		case KindInteger:
			if f.accepts(parts[pi]) {
				if v, err := f.Unsolve(parts[pi]); err == nil {
					if out, ok := p.assign(parts, fi+1, pi+1, append(acc, FieldValue{f.name, v})); ok {
						return out, true
					}
				}
			}
		case KindLookup, KindText:
			for j := pi + 1; j <= len(parts); j++ {
				token := strings.Join(parts[pi:j], p.separator)
				if !f.accepts(token) {
					continue
				}
				v, err := f.Unsolve(token)
				if err != nil {
					continue
				}
				if out, ok := p.assign(parts, fi+1, j, append(acc, FieldValue{f.name, v})); ok {
					return out, true
				}
			}
		}
	}

	// Optional fields may be absent from the composed name.
	if !f.required {
		return p.assign(parts, fi+1, pi, acc)
	}
	return nil, false
}
