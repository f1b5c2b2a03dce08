package customer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadProfiles reads a JSON array of customer profiles from disk.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading customers: %w", err)
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("unmarshaling customers: %w", err)
	}

	return profiles, nil
}

// SaveProfiles writes customer profiles to disk as JSON.
func SaveProfiles(path string, profiles []Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for customers: %w", err)
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling customers: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing customers: %w", err)
	}

	return nil
}
