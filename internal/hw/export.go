package hw

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Serialization formats supported by Marshal.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Marshal encodes a Snapshot as JSON or YAML.
func Marshal(snap *Snapshot, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Unmarshal decodes a Snapshot previously produced by Marshal.
func Unmarshal(data []byte, format string) (*Snapshot, error) {
	var snap Snapshot
	switch strings.ToLower(format) {
	case FormatJSON:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &snap, nil
}

// WriteSnapshot exports a Snapshot to filePath.
func WriteSnapshot(filePath, format string, snap *Snapshot) error {
	data, err := Marshal(snap, format)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}
