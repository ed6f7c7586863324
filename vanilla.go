package ja2cp

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// VanillaIndex maps vanilla object names to their IDs in Data/Objects
type VanillaIndex map[string]string

// Lookup finds the vanilla ID of an object name
func (v VanillaIndex) Lookup(name string) (string, bool) {
	id, ok := v[name]
	return id, ok
}

// BuildVanillaIndex builds the index from the unpacked Data/Objects.json,
// which maps each ID to an object record with a Name field.
func BuildVanillaIndex(objects []byte) (VanillaIndex, error) {
	doc, err := parseJSON("Data/Objects", objects)
	if err != nil {
		return nil, err
	}
	if !doc.IsObject() {
		return nil, errors.New("expected Data/Objects keyed by item ID")
	}
	idx := make(VanillaIndex)
	doc.ForEach(func(key, val gjson.Result) bool {
		switch {
		case val.IsObject():
			if name := val.Get("Name").String(); name != "" {
				idx[name] = key.String()
			}
		case val.Type == gjson.String:
			// already a compact name -> id index
			idx[key.String()] = val.String()
		}
		return true
	})
	return idx, nil
}

// LoadVanillaIndex reads either the raw Data/Objects.json or an index
// previously written by Save.
func LoadVanillaIndex(path string) (VanillaIndex, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vanilla objects: %w", err)
	}
	idx, err := BuildVanillaIndex(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}

// Save writes the compact name -> id index
func (v VanillaIndex) Save(path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal vanilla index: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write vanilla index: %w", err)
	}
	return nil
}
