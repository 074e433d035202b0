package preset

import (
	"encoding/json"
	"fmt"
	"os"
)

// MissingFieldError reports a preset file lacking a required key.
type MissingFieldError struct {
	Section string
	Field   string
}

func (e *MissingFieldError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("malformed preset: missing required key %q", e.Field)
	}
	return fmt.Sprintf("malformed preset: missing required %s field %q", e.Section, e.Field)
}

// Required keys per section, matching the on-disk snake_case schema.
var (
	engineFields = []string{
		"name", "cost", "horsepower", "min_rpm", "max_rpm", "fuel_usage_scale", "turbocharged",
	}
	transmissionFields = []string{
		"name", "cost", "type", "top_speed", "num_forward", "num_reverse", "enable_low_gearing", "low_gear_boost",
	}
)

// SaveFile writes a preset pair to path as indented UTF-8 JSON.
func SaveFile(path string, p Pair) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to save preset %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a preset pair from path. Both top-level sections and every
// field within them are required; an absent key fails with MissingFieldError
// before any value is used.
func LoadFile(path string) (Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pair{}, fmt.Errorf("failed to load preset %s: %w", path, err)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return Pair{}, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}

	engineRaw, ok := sections["engine"]
	if !ok {
		return Pair{}, &MissingFieldError{Field: "engine"}
	}
	transmissionRaw, ok := sections["transmission"]
	if !ok {
		return Pair{}, &MissingFieldError{Field: "transmission"}
	}

	if err := checkFields("engine", engineRaw, engineFields); err != nil {
		return Pair{}, err
	}
	if err := checkFields("transmission", transmissionRaw, transmissionFields); err != nil {
		return Pair{}, err
	}

	var p Pair
	if err := json.Unmarshal(engineRaw, &p.Engine); err != nil {
		return Pair{}, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	if err := json.Unmarshal(transmissionRaw, &p.Transmission); err != nil {
		return Pair{}, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}

	return p, nil
}

func checkFields(section string, raw json.RawMessage, required []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("failed to parse preset section %q: %w", section, err)
	}
	for _, field := range required {
		if _, ok := fields[field]; !ok {
			return &MissingFieldError{Section: section, Field: field}
		}
	}
	return nil
}
