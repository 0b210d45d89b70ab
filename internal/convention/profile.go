package convention

import (
	"fmt"
	"strings"
)

// DefaultSeparator joins tokens into a name when a profile does not
// configure its own.
const DefaultSeparator = "_"

// Profile is an ordered set of fields plus a join separator, defining one
// naming convention. Field order is insertion order and drives both
// directions: solve joins tokens in that order, unsolve assigns segments
// in that order.
type Profile struct {
	name      string
	fields    []*Field
	byName    map[string]*Field
	separator string
}

// ProfileOption configures a profile at construction time.
type ProfileOption func(*Profile)

// WithSeparator sets the token separator (default "_").
func WithSeparator(sep string) ProfileOption {
	return func(p *Profile) { p.separator = sep }
}

// NewProfile creates an empty profile.
func NewProfile(name string, opts ...ProfileOption) (*Profile, error) {
	if name == "" {
		return nil, fmt.Errorf("profile name must not be empty")
	}
	p := &Profile{
		name:      name,
		byName:    make(map[string]*Field),
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.separator == "" {
		return nil, fmt.Errorf("profile %q: separator must not be empty", name)
	}
	return p, nil
}

// Name returns the profile name.
func (p *Profile) Name() string { return p.name }

// Separator returns the join separator.
func (p *Profile) Separator() string { return p.separator }

// Fields returns the fields in declaration order.
func (p *Profile) Fields() []*Field {
	out := make([]*Field, len(p.fields))
	copy(out, p.fields)
	return out
}

// Field returns the named field, if present.
func (p *Profile) Field(name string) (*Field, bool) {
	f, ok := p.byName[name]
	return f, ok
}

// AddField appends a field. Field names are unique within a profile.
func (p *Profile) AddField(f *Field) error {
	if f == nil {
		return fmt.Errorf("profile %q: cannot add nil field", p.name)
	}
	if _, dup := p.byName[f.Name()]; dup {
		return fmt.Errorf("profile %q already has a field named %q", p.name, f.Name())
	}
	p.fields = append(p.fields, f)
	p.byName[f.Name()] = f
	return nil
}

// AddFields appends fields in order, stopping at the first error.
func (p *Profile) AddFields(fields ...*Field) error {
	for _, f := range fields {
		if err := p.AddField(f); err != nil {
			return err
		}
	}
	return nil
}

// FieldTokens is one entry of a profile solve result: the field name and
// the tokens it resolved, in declaration order.
type FieldTokens struct {
	Field      string
	Tokens     []string
	Mismatches []Mismatch
}

// Solve runs every field against the full candidate set and returns the
// per-field token sets in declaration order. Fields filter candidates for
// themselves, with one profile-level refinement: a string candidate that
// matched a lookup field's key is claimed and no longer offered to text
// fields, so explicit lookup input does not leak into free-form segments.
func (p *Profile) Solve(candidates ...any) []FieldTokens {
	claimed := p.claimLookupCandidates(candidates)

	results := make([]FieldTokens, 0, len(p.fields))
	for _, f := range p.fields {
		input := candidates
		if f.Kind() == KindText && len(claimed) > 0 {
			input = unclaimed(candidates, claimed)
		}
		sol := f.Solve(input...)
		results = append(results, FieldTokens{
			Field:      f.Name(),
			Tokens:     sol.Tokens,
			Mismatches: sol.Mismatches,
		})
	}
	return results
}

// claimLookupCandidates returns the candidate indexes matched by any
// lookup field's key table.
func (p *Profile) claimLookupCandidates(candidates []any) map[int]bool {
	claimed := make(map[int]bool)
	for _, f := range p.fields {
		if f.Kind() != KindLookup {
			continue
		}
		for i, c := range candidates {
			if key, ok := c.(string); ok {
				if _, found := f.index[key]; found {
					claimed[i] = true
				}
			}
		}
	}
	return claimed
}

func unclaimed(candidates []any, claimed map[int]bool) []any {
	out := make([]any, 0, len(candidates))
	for i, c := range candidates {
		if !claimed[i] {
			out = append(out, c)
		}
	}
	return out
}

// Compose assembles the canonical name for the candidate set: each field
// contributes its first resolved token, joined by the separator. A
// required field with no token fails with [UnresolvedFieldError]; an
// unsatisfied optional field is omitted from the name.
func (p *Profile) Compose(candidates ...any) (string, error) {
	if len(p.fields) == 0 {
		return "", fmt.Errorf("profile %q has no fields", p.name)
	}
	tokens := make([]string, 0, len(p.fields))
	for _, ft := range p.Solve(candidates...) {
		if len(ft.Tokens) > 0 {
			tokens = append(tokens, ft.Tokens[0])
			continue
		}
		f := p.byName[ft.Field]
		if f.Required() {
			return "", &UnresolvedFieldError{Field: ft.Field}
		}
	}
	return strings.Join(tokens, p.separator), nil
}
