package registry

import (
	"encoding/json"
	"fmt"

	"github.com/xileflig/naming/internal/convention"
	"github.com/xileflig/naming/internal/store"
)

// Serialized forms. The schema is deliberately flat JSON so the store
// documents stay readable and diffable by hand.

type pairDoc struct {
	Key   string `json:"key"`
	Token string `json:"token"`
}

type fieldDoc struct {
	Name     string          `json:"name"`
	Kind     convention.Kind `json:"kind"`
	Pairs    []pairDoc       `json:"pairs,omitempty"`
	Default  *string         `json:"default,omitempty"`
	Required bool            `json:"required"`
	Padding  int             `json:"padding,omitempty"`
}

type profileDoc struct {
	Name      string   `json:"name"`
	Fields    []string `json:"fields"`
	Separator string   `json:"separator"`
}

// Save serializes every field and profile plus the active-profile name to
// the driver.
func (r *Registry) Save() error {
	fieldDocs := make([]fieldDoc, 0, len(r.fieldOrder))
	for _, f := range r.Fields() {
		fieldDocs = append(fieldDocs, encodeField(f))
	}

	profileDocs := make([]profileDoc, 0, len(r.profileOrder))
	for _, p := range r.Profiles() {
		doc := profileDoc{Name: p.Name(), Fields: []string{}, Separator: p.Separator()}
		for _, f := range p.Fields() {
			doc.Fields = append(doc.Fields, f.Name())
		}
		profileDocs = append(profileDocs, doc)
	}

	docs := make(map[string]json.RawMessage, 3)
	var err error
	if docs[store.KeyFields], err = json.Marshal(fieldDocs); err != nil {
		return fmt.Errorf("serialize fields: %w", err)
	}
	if docs[store.KeyProfiles], err = json.Marshal(profileDocs); err != nil {
		return fmt.Errorf("serialize profiles: %w", err)
	}
	if docs[store.KeyActiveProfile], err = json.Marshal(r.active); err != nil {
		return fmt.Errorf("serialize active profile: %w", err)
	}
	return r.driver.Dump(docs)
}

// Load replaces the registry state with what the driver has stored. An
// empty store yields an empty registry. A stored active profile that no
// longer resolves is cleared rather than treated as an error.
func (r *Registry) Load() error {
	docs, err := r.driver.Load()
	if err != nil {
		return err
	}

	fields := make(map[string]*convention.Field)
	var fieldOrder []string
	if raw, ok := docs[store.KeyFields]; ok {
		var fieldDocs []fieldDoc
		if err := json.Unmarshal(raw, &fieldDocs); err != nil {
			return fmt.Errorf("decode %s: %w", store.KeyFields, err)
		}
		for _, doc := range fieldDocs {
			f, err := decodeField(doc)
			if err != nil {
				return err
			}
			if _, dup := fields[f.Name()]; dup {
				return fmt.Errorf("stored state has duplicate field %q", f.Name())
			}
			fields[f.Name()] = f
			fieldOrder = append(fieldOrder, f.Name())
		}
	}

	profiles := make(map[string]*convention.Profile)
	var profileOrder []string
	if raw, ok := docs[store.KeyProfiles]; ok {
		var profileDocs []profileDoc
		if err := json.Unmarshal(raw, &profileDocs); err != nil {
			return fmt.Errorf("decode %s: %w", store.KeyProfiles, err)
		}
		for _, doc := range profileDocs {
			sep := doc.Separator
			if sep == "" {
				sep = convention.DefaultSeparator
			}
			p, err := convention.NewProfile(doc.Name, convention.WithSeparator(sep))
			if err != nil {
				return fmt.Errorf("stored profile: %w", err)
			}
			for _, fn := range doc.Fields {
				f, ok := fields[fn]
				if !ok {
					return fmt.Errorf("stored profile %q references unknown field %q", doc.Name, fn)
				}
				if err := p.AddField(f); err != nil {
					return fmt.Errorf("stored profile %q: %w", doc.Name, err)
				}
			}
			if _, dup := profiles[doc.Name]; dup {
				return fmt.Errorf("stored state has duplicate profile %q", doc.Name)
			}
			profiles[doc.Name] = p
			profileOrder = append(profileOrder, doc.Name)
		}
	}

	active := ""
	if raw, ok := docs[store.KeyActiveProfile]; ok {
		if err := json.Unmarshal(raw, &active); err != nil {
			return fmt.Errorf("decode %s: %w", store.KeyActiveProfile, err)
		}
	}
	if _, ok := profiles[active]; !ok {
		active = ""
	}

	r.fields = fields
	r.fieldOrder = fieldOrder
	r.profiles = profiles
	r.profileOrder = profileOrder
	r.active = active
	return nil
}

func encodeField(f *convention.Field) fieldDoc {
	doc := fieldDoc{
		Name:     f.Name(),
		Kind:     f.Kind(),
		Required: f.Required(),
		Padding:  f.Padding(),
	}
	if def, ok := f.Default(); ok {
		doc.Default = &def
	}
	for _, p := range f.Pairs() {
		doc.Pairs = append(doc.Pairs, pairDoc{Key: p.Key, Token: p.Token})
	}
	return doc
}

func decodeField(doc fieldDoc) (*convention.Field, error) {
	pairs := make([]convention.Pair, 0, len(doc.Pairs))
	for _, p := range doc.Pairs {
		pairs = append(pairs, convention.Pair{Key: p.Key, Token: p.Token})
	}
	def := ""
	hasDef := doc.Default != nil
	if hasDef {
		def = *doc.Default
	}
	f, err := convention.Reconstruct(doc.Name, doc.Kind, pairs, def, hasDef, doc.Required, doc.Padding)
	if err != nil {
		return nil, fmt.Errorf("stored field %q: %w", doc.Name, err)
	}
	return f, nil
}
