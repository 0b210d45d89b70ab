// Package store is the persistence port for naming-convention state.
// State is a small set of opaque JSON documents keyed by logical group
// name; drivers only move those documents, they never interpret them.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// Top-level document keys shared by all drivers.
const (
	KeyFields        = "FIELDS"
	KeyProfiles      = "PROFILES"
	KeyActiveProfile = "ACTIVE_PROFILE"
)

// Driver moves opaque JSON documents between the registry and a backing
// store. Implementations must treat the payloads as black boxes.
type Driver interface {
	// Load returns every stored document. A store with no prior state
	// returns an empty map and no error.
	Load() (map[string]json.RawMessage, error)

	// Dump persists the given documents, merging over what is already
	// stored. Keys absent from docs are left untouched.
	Dump(docs map[string]json.RawMessage) error
}

// validKey rejects document keys that would escape the store directory
// when used as a filename.
func validKey(key string) error {
	if key == "" || filepath.Base(key) != key {
		return fmt.Errorf("invalid document key %q", key)
	}
	return nil
}
