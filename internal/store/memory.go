package store

import "encoding/json"

// MemoryDriver keeps documents in process memory. Nothing survives the
// process; it exists for tests and throwaway sessions.
type MemoryDriver struct {
	docs map[string]json.RawMessage
}

// NewMemoryDriver returns an empty in-memory driver.
func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{docs: make(map[string]json.RawMessage)}
}

// Load returns a copy of the stored documents.
func (d *MemoryDriver) Load() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(d.docs))
	for k, v := range d.docs {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out, nil
}

// Dump merges docs over the stored documents.
func (d *MemoryDriver) Dump(docs map[string]json.RawMessage) error {
	for k, v := range docs {
		if err := validKey(k); err != nil {
			return err
		}
		d.docs[k] = append(json.RawMessage(nil), v...)
	}
	return nil
}
