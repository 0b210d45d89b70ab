package convention

import (
	"errors"
	"testing"
)

func TestProfileUnsolve(t *testing.T) {
	kind := []Pair{{"char", "c"}, {"env", "e"}}

	cases := []struct {
		name    string
		fields  func(t *testing.T) []*Field
		input   string
		want    []FieldValue
		wantErr any // nil, *DecodeError, or *TokenCountError
	}{
		{
			name: "lookup and integer",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustLookup(t, "kind", kind),
					mustInteger(t, "version", WithPadding(3)),
				}
			},
			input: "c_007",
			want: []FieldValue{
				{"kind", "char"},
				{"version", 7},
			},
		},
		{
			name: "text in the middle",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustLookup(t, "kind", kind),
					mustText(t, "desc"),
					mustInteger(t, "version"),
				}
			},
			input: "e_walk_012",
			want: []FieldValue{
				{"kind", "env"},
				{"desc", "walk"},
				{"version", 12},
			},
		},
		{
			name: "lookup token containing the separator",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustLookup(t, "kind", []Pair{{"left hand", "l_hand"}, {"right hand", "r_hand"}}),
					mustInteger(t, "version"),
				}
			},
			input: "l_hand_005",
			want: []FieldValue{
				{"kind", "left hand"},
				{"version", 5},
			},
		},
		{
			name: "text absorbs extra segments",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustText(t, "desc"),
					mustInteger(t, "version"),
				}
			},
			input: "walk_cycle_fast_003",
			want: []FieldValue{
				{"desc", "walk_cycle_fast"},
				{"version", 3},
			},
		},
		{
			name: "optional field absent",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustLookup(t, "kind", kind),
					mustText(t, "desc", Optional()),
					mustInteger(t, "version"),
				}
			},
			input: "c_002",
			want: []FieldValue{
				{"kind", "char"},
				{"version", 2},
			},
		},
		{
			name: "optional field present",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustLookup(t, "kind", kind),
					mustText(t, "desc", Optional()),
					mustInteger(t, "version"),
				}
			},
			input: "c_walk_002",
			want: []FieldValue{
				{"kind", "char"},
				{"desc", "walk"},
				{"version", 2},
			},
		},
		{
			name: "too few segments",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustLookup(t, "kind", kind),
					mustText(t, "desc"),
					mustInteger(t, "version"),
				}
			},
			input:   "c_007",
			wantErr: &TokenCountError{},
		},
		{
			name: "unknown lookup token at matching count",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustLookup(t, "kind", kind),
					mustInteger(t, "version"),
				}
			},
			input:   "x_007",
			wantErr: &DecodeError{},
		},
		{
			name: "non-numeric where integer expected",
			fields: func(t *testing.T) []*Field {
				return []*Field{
					mustLookup(t, "kind", kind),
					mustInteger(t, "version"),
				}
			},
			input:   "c_seven",
			wantErr: &DecodeError{},
		},
		{
			name: "empty name",
			fields: func(t *testing.T) []*Field {
				return []*Field{mustText(t, "desc")}
			},
			input:   "",
			wantErr: &TokenCountError{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestProfile(t, "asset", tc.fields(t)...)
			got, err := p.Unsolve(tc.input)

			switch tc.wantErr.(type) {
			case *DecodeError:
				var de *DecodeError
				if !errors.As(err, &de) {
					t.Fatalf("want *DecodeError, got %T: %v", err, err)
				}
				if de.Field == "" || de.Position < 0 {
					t.Errorf("decode error must carry field and position, got %+v", de)
				}
				return
			case *TokenCountError:
				var tce *TokenCountError
				if !errors.As(err, &tce) {
					t.Fatalf("want *TokenCountError, got %T: %v", err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unsolve(%q): %v", tc.input, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d values %v, want %d", len(got), got, len(tc.want))
			}
			for i, fv := range tc.want {
				if got[i].Field != fv.Field || got[i].Value != fv.Value {
					t.Errorf("value %d: got %v=%v, want %v=%v",
						i, got[i].Field, got[i].Value, fv.Field, fv.Value)
				}
			}
		})
	}
}

func TestDecodeErrorIdentifiesPosition(t *testing.T) {
	p := newTestProfile(t, "asset",
		mustLookup(t, "kind", []Pair{{"char", "c"}}),
		mustInteger(t, "version"),
	)
	_, err := p.Unsolve("c_seven")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("want *DecodeError, got %T", err)
	}
	if de.Field != "version" || de.Position != 1 || de.Token != "seven" {
		t.Errorf("got %+v, want field \"version\" at position 1 with token \"seven\"", de)
	}
}

func TestRoundTrip(t *testing.T) {
	p := newTestProfile(t, "asset",
		mustLookup(t, "kind", []Pair{{"char", "c"}, {"env", "e"}}),
		mustText(t, "desc"),
		mustInteger(t, "version", WithPadding(3)),
	)

	cases := []struct {
		name       string
		candidates []any
		want       []FieldValue
	}{
		{
			name:       "full input",
			candidates: []any{"char", "walk", 7},
			want:       []FieldValue{{"kind", "char"}, {"desc", "walk"}, {"version", 7}},
		},
		{
			name:       "defaults fill the gaps",
			candidates: []any{"idle"},
			want:       []FieldValue{{"kind", "char"}, {"desc", "idle"}, {"version", 0}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, err := p.Compose(tc.candidates...)
			if err != nil {
				t.Fatalf("Compose: %v", err)
			}
			got, err := p.Unsolve(name)
			if err != nil {
				t.Fatalf("Unsolve(%q): %v", name, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i, fv := range tc.want {
				if got[i] != fv {
					t.Errorf("value %d: got %v, want %v", i, got[i], fv)
				}
			}
		})
	}
}

func TestUnsolveTokenCountCarriesCounts(t *testing.T) {
	p := newTestProfile(t, "asset",
		mustLookup(t, "kind", []Pair{{"char", "c"}}),
		mustText(t, "desc"),
		mustInteger(t, "version"),
	)
	_, err := p.Unsolve("c")
	var tce *TokenCountError
	if !errors.As(err, &tce) {
		t.Fatalf("want *TokenCountError, got %T: %v", err, err)
	}
	if tce.Got != 1 || tce.Want != 3 {
		t.Errorf("got %d/%d, want 1/3", tce.Got, tce.Want)
	}
}
