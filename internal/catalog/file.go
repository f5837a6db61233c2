package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// DefaultCustomDir returns the default directory for user-authored catalog
// overrides.
func DefaultCustomDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "stroycalc"), nil
}

// DefaultCustomPath returns the default file path for user-authored
// categories.
func DefaultCustomPath() (string, error) {
	dir, err := DefaultCustomDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalog.json"), nil
}

// SaveCustom persists user-authored category payloads as JSON, creating
// missing parent directories.
func SaveCustom(path string, payload []APICategory) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustom reads user-authored category payloads from a JSON file.
// A missing file is not an error: there is simply nothing to merge.
func LoadCustom(path string) ([]APICategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var payload []APICategory
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Merge overlays custom categories onto a base set: a custom category with a
// known slug replaces the base one, a new slug is appended.
func Merge(base []Material, custom []Material) []Material {
	merged := make([]Material, len(base))
	copy(merged, base)
	for _, c := range custom {
		if existing := Find(merged, c.Slug); existing != nil {
			*existing = c
			continue
		}
		merged = append(merged, c)
	}
	return merged
}
