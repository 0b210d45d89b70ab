// Package registry owns the process-facing bookkeeping of a naming
// convention: the known fields, the known profiles, and the active
// profile. A Registry is an explicit context object created by the
// caller with an injected persistence driver; there is no package-level
// state.
package registry

import (
	"fmt"

	"github.com/xileflig/naming/internal/convention"
	"github.com/xileflig/naming/internal/store"
)

// Registry maps names to fields and profiles and tracks the active
// profile. Insertion order is preserved for deterministic listing and
// serialization.
type Registry struct {
	driver store.Driver

	fields     map[string]*convention.Field
	fieldOrder []string

	profiles     map[string]*convention.Profile
	profileOrder []string

	active string
}

// New returns an empty registry backed by driver.
func New(driver store.Driver) *Registry {
	return &Registry{
		driver:   driver,
		fields:   make(map[string]*convention.Field),
		profiles: make(map[string]*convention.Profile),
	}
}

// AddField registers a field. Re-registering a name replaces the previous
// definition in place, keeping its listing position.
func (r *Registry) AddField(f *convention.Field) error {
	if f == nil {
		return fmt.Errorf("cannot register nil field")
	}
	name := f.Name()
	if _, exists := r.fields[name]; !exists {
		r.fieldOrder = append(r.fieldOrder, name)
	}
	r.fields[name] = f
	return nil
}

// Field returns the named field, if registered.
func (r *Registry) Field(name string) (*convention.Field, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// Fields returns all registered fields in registration order.
func (r *Registry) Fields() []*convention.Field {
	out := make([]*convention.Field, 0, len(r.fieldOrder))
	for _, name := range r.fieldOrder {
		out = append(out, r.fields[name])
	}
	return out
}

// AddProfile creates and registers a profile whose fields are resolved by
// name against the registered fields. The first profile ever added
// becomes active regardless of the active flag (there must always be an
// implicit default once a profile exists).
func (r *Registry) AddProfile(name string, fieldNames []string, active bool, opts ...convention.ProfileOption) (*convention.Profile, error) {
	if _, dup := r.profiles[name]; dup {
		return nil, fmt.Errorf("profile %q already registered", name)
	}
	p, err := convention.NewProfile(name, opts...)
	if err != nil {
		return nil, err
	}
	for _, fn := range fieldNames {
		f, ok := r.fields[fn]
		if !ok {
			return nil, fmt.Errorf("profile %q references unknown field %q", name, fn)
		}
		if err := p.AddField(f); err != nil {
			return nil, err
		}
	}

	if len(r.profiles) == 0 {
		active = true
	}
	r.profiles[name] = p
	r.profileOrder = append(r.profileOrder, name)
	if active {
		r.active = name
	}
	return p, nil
}

// Profile returns the named profile, if registered.
func (r *Registry) Profile(name string) (*convention.Profile, bool) {
	p, ok := r.profiles[name]
	return p, ok
}

// Profiles returns all registered profiles in registration order.
func (r *Registry) Profiles() []*convention.Profile {
	out := make([]*convention.Profile, 0, len(r.profileOrder))
	for _, name := range r.profileOrder {
		out = append(out, r.profiles[name])
	}
	return out
}

// SetActiveProfile selects the profile used when the caller does not name
// one explicitly.
func (r *Registry) SetActiveProfile(name string) error {
	if _, ok := r.profiles[name]; !ok {
		return fmt.Errorf("unknown profile %q", name)
	}
	r.active = name
	return nil
}

// ActiveProfile returns the active profile, or nil when none is set.
func (r *Registry) ActiveProfile() *convention.Profile {
	if r.active == "" {
		return nil
	}
	return r.profiles[r.active]
}
