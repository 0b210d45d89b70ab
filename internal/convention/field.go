package convention

import (
	"fmt"
	"strconv"
)

// Kind identifies the matching and formatting rule of a field.
type Kind string

const (
	KindText    Kind = "text"    // Free-form string segment.
	KindLookup  Kind = "lookup"  // Key -> token table segment.
	KindInteger Kind = "integer" // Zero-padded numeric segment.
)

// DefaultPadding is the integer-field digit width used when none is
// configured.
const DefaultPadding = 3

// Pair is one key -> token entry of a Lookup field. Declaration order is
// significant: it drives the default token and reverse-lookup tie breaks.
type Pair struct {
	Key   string
	Token string
}

// Field is one typed token rule contributing one segment of a composed
// name. Its kind is fixed at construction and never changes.
type Field struct {
	name     string
	kind     Kind
	required bool

	// Default token, used when no candidate matches.
	def    string
	hasDef bool

	// Lookup payload.
	pairs   []Pair
	index   map[string]string // key -> token
	reverse map[string]string // token -> first declared key

	// Integer payload.
	padding int
}

// settings collects option values before kind-specific validation.
type settings struct {
	optional   bool
	def        string
	hasDef     bool
	intDef     int
	hasIntDef  bool
	padding    int
	hasPadding bool
}

// Option configures a field at construction time.
type Option func(*settings)

// Optional marks the field as not required: an unsatisfied optional field
// is omitted from a composed name instead of failing the assembly.
func Optional() Option {
	return func(s *settings) { s.optional = true }
}

// WithDefault sets the token used when no candidate matches. For Lookup
// fields the value is a token, not a key.
func WithDefault(token string) Option {
	return func(s *settings) {
		s.def = token
		s.hasDef = true
	}
}

// WithIntDefault sets the numeric default of an Integer field; it is
// rendered zero-padded like any solved value.
func WithIntDefault(n int) Option {
	return func(s *settings) {
		s.intDef = n
		s.hasIntDef = true
	}
}

// WithPadding sets the minimum digit width of an Integer field.
func WithPadding(width int) Option {
	return func(s *settings) {
		s.padding = width
		s.hasPadding = true
	}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTextField creates a free-form text field. Text fields have no
// default unless one is configured.
func NewTextField(name string, opts ...Option) (*Field, error) {
	s := applyOptions(opts)
	if err := validateCommon(name, KindText, s); err != nil {
		return nil, err
	}
	return &Field{
		name:     name,
		kind:     KindText,
		required: !s.optional,
		def:      s.def,
		hasDef:   s.hasDef,
	}, nil
}

// NewLookupField creates a table-backed field. Pairs must be non-empty
// with unique keys; unless overridden, the first declared token is the
// default.
func NewLookupField(name string, pairs []Pair, opts ...Option) (*Field, error) {
	s := applyOptions(opts)
	if err := validateCommon(name, KindLookup, s); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("lookup field %q needs at least one key/token pair", name)
	}
	f := &Field{
		name:     name,
		kind:     KindLookup,
		required: !s.optional,
		def:      s.def,
		hasDef:   s.hasDef,
	}
	if err := f.setPairs(pairs); err != nil {
		return nil, err
	}
	if !f.hasDef {
		f.def = pairs[0].Token
		f.hasDef = true
	}
	return f, nil
}

// NewIntegerField creates a zero-padded numeric field. Padding defaults
// to [DefaultPadding]; the numeric default is 0 unless overridden.
func NewIntegerField(name string, opts ...Option) (*Field, error) {
	s := applyOptions(opts)
	if s.hasDef {
		return nil, fmt.Errorf("integer field %q takes WithIntDefault, not WithDefault", name)
	}
	if name == "" {
		return nil, fmt.Errorf("field name must not be empty")
	}
	padding := DefaultPadding
	if s.hasPadding {
		if s.padding < 1 {
			return nil, fmt.Errorf("integer field %q: padding must be at least 1 (got %d)", name, s.padding)
		}
		padding = s.padding
	}
	def := 0
	if s.hasIntDef {
		def = s.intDef
	}
	return &Field{
		name:     name,
		kind:     KindInteger,
		required: !s.optional,
		padding:  padding,
		def:      fmt.Sprintf("%0*d", padding, def),
		hasDef:   true,
	}, nil
}

func validateCommon(name string, kind Kind, s settings) error {
	if name == "" {
		return fmt.Errorf("field name must not be empty")
	}
	if s.hasPadding {
		return fmt.Errorf("%s field %q: padding is only valid for integer fields", kind, name)
	}
	if s.hasIntDef {
		return fmt.Errorf("%s field %q: WithIntDefault is only valid for integer fields", kind, name)
	}
	return nil
}

// Reconstruct rebuilds a field from its serialized form (storage
// hydration). kind must be one of the three known kinds; lookup fields
// must carry pairs.
func Reconstruct(name string, kind Kind, pairs []Pair, def string, hasDefault, required bool, padding int) (*Field, error) {
	if name == "" {
		return nil, fmt.Errorf("field name must not be empty")
	}
	f := &Field{
		name:     name,
		kind:     kind,
		required: required,
		def:      def,
		hasDef:   hasDefault,
	}
	switch kind {
	case KindText:
	case KindLookup:
		if len(pairs) == 0 {
			return nil, fmt.Errorf("lookup field %q has no pairs", name)
		}
		if err := f.setPairs(pairs); err != nil {
			return nil, err
		}
	case KindInteger:
		if padding < 1 {
			return nil, fmt.Errorf("integer field %q: invalid padding %d", name, padding)
		}
		f.padding = padding
	default:
		return nil, fmt.Errorf("field %q has unknown kind %q", name, kind)
	}
	return f, nil
}

func (f *Field) setPairs(pairs []Pair) error {
	f.pairs = make([]Pair, len(pairs))
	copy(f.pairs, pairs)
	f.index = make(map[string]string, len(pairs))
	f.reverse = make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.Key == "" || p.Token == "" {
			return fmt.Errorf("lookup field %q: empty key or token in pair %q -> %q", f.name, p.Key, p.Token)
		}
		if _, dup := f.index[p.Key]; dup {
			return fmt.Errorf("lookup field %q: duplicate key %q", f.name, p.Key)
		}
		f.index[p.Key] = p.Token
		// First declared key wins the reverse mapping.
		if _, seen := f.reverse[p.Token]; !seen {
			f.reverse[p.Token] = p.Key
		}
	}
	return nil
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Kind returns the field kind.
func (f *Field) Kind() Kind { return f.kind }

// Required reports whether an unsatisfied field fails name assembly.
func (f *Field) Required() bool { return f.required }

// Default returns the fallback token and whether one is configured.
func (f *Field) Default() (string, bool) { return f.def, f.hasDef }

// Padding returns the digit width of an Integer field (0 otherwise).
func (f *Field) Padding() int { return f.padding }

// Pairs returns a copy of a Lookup field's declared pairs (nil otherwise).
func (f *Field) Pairs() []Pair {
	if f.pairs == nil {
		return nil
	}
	out := make([]Pair, len(f.pairs))
	copy(out, f.pairs)
	return out
}

// Solution is the outcome of one field's solve pass: the tokens the field
// can contribute (deduplicated, in candidate scan order) plus the
// candidates it could not classify.
type Solution struct {
	Tokens     []string
	Mismatches []Mismatch
}

// Empty reports whether the field produced no token.
func (s Solution) Empty() bool { return len(s.Tokens) == 0 }

// Solve scans candidates and returns every token this field accepts.
// Candidates the field cannot classify are recorded as mismatches and
// skipped; when nothing matches and a default is configured, the default
// becomes the sole token.
func (f *Field) Solve(candidates ...any) Solution {
	var sol Solution
	seen := make(map[string]bool)
	add := func(token string) {
		if !seen[token] {
			seen[token] = true
			sol.Tokens = append(sol.Tokens, token)
		}
	}

	for _, c := range candidates {
		switch f.kind {
		case KindText:
			s, ok := c.(string)
			if !ok {
				sol.Mismatches = append(sol.Mismatches, Mismatch{
					Field: f.name, Value: c, Reason: "text field expects a string",
				})
				continue
			}
			add(s)
		case KindLookup:
			key, ok := c.(string)
			if !ok {
				sol.Mismatches = append(sol.Mismatches, Mismatch{
					Field: f.name, Value: c, Reason: "lookup field expects a string key",
				})
				continue
			}
			// Unknown keys are not an error; the candidate simply
			// belongs to another field.
			if token, found := f.index[key]; found {
				add(token)
			}
		case KindInteger:
			n, ok := c.(int)
			if !ok {
				sol.Mismatches = append(sol.Mismatches, Mismatch{
					Field: f.name, Value: c, Reason: "integer field expects an int",
				})
				continue
			}
			add(fmt.Sprintf("%0*d", f.padding, n))
		}
	}

	if sol.Empty() && f.hasDef {
		sol.Tokens = []string{f.def}
	}
	return sol
}

// Unsolve decodes one raw token belonging to this field back to its
// semantic value: the key for Lookup, the numeric value for Integer, the
// token itself for Text. It returns a [DecodeError] when the token does
// not match the field's shape.
func (f *Field) Unsolve(token string) (any, error) {
	switch f.kind {
	case KindText:
		if token == "" {
			return nil, &DecodeError{Field: f.name, Position: -1, Token: token, Reason: "empty segment"}
		}
		return token, nil
	case KindLookup:
		key, ok := f.reverse[token]
		if !ok {
			return nil, &DecodeError{Field: f.name, Position: -1, Token: token, Reason: "token not in lookup table"}
		}
		return key, nil
	case KindInteger:
		if !allDigits(token) {
			return nil, &DecodeError{Field: f.name, Position: -1, Token: token, Reason: "expected digits"}
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, &DecodeError{Field: f.name, Position: -1, Token: token, Reason: "integer out of range"}
		}
		return n, nil
	}
	return nil, &DecodeError{Field: f.name, Position: -1, Token: token, Reason: "unknown field kind"}
}

// accepts reports whether token is a plausible segment for this field
// without producing an error value. Used by the unsolve tokenizer.
func (f *Field) accepts(token string) bool {
	switch f.kind {
	case KindText:
		return token != ""
	case KindLookup:
		_, ok := f.reverse[token]
		return ok
	case KindInteger:
		return allDigits(token)
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
