package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// JSONDriver persists each top-level document as its own JSON file inside
// a directory (FIELDS.json, PROFILES.json, ...). Multiple processes
// pointed at the same directory share one convention.
type JSONDriver struct {
	dir string
}

// NewJSONDriver returns a driver rooted at dir. The directory is created
// lazily on the first Dump.
func NewJSONDriver(dir string) *JSONDriver {
	return &JSONDriver{dir: dir}
}

// Dir returns the store directory.
func (d *JSONDriver) Dir() string { return d.dir }

// Load reads every *.json document in the store directory. A missing
// directory is an empty store, not an error.
func (d *JSONDriver) Load() (map[string]json.RawMessage, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read store directory %s: %w", d.dir, err)
	}

	docs := make(map[string]json.RawMessage)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(d.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read store document %s: %w", name, err)
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("store document %s is not valid JSON", name)
		}
		docs[strings.TrimSuffix(name, ".json")] = json.RawMessage(data)
	}
	return docs, nil
}

// Dump writes each document to <key>.json, creating the directory when
// needed. Documents not named in docs are left as they are.
func (d *JSONDriver) Dump(docs map[string]json.RawMessage) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create store directory %s: %w", d.dir, err)
	}
	for k, v := range docs {
		if err := validKey(k); err != nil {
			return err
		}
		path := filepath.Join(d.dir, k+".json")
		if err := os.WriteFile(path, v, 0o644); err != nil {
			return fmt.Errorf("write store document %s: %w", path, err)
		}
	}
	return nil
}
