package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BumpType is the severity of a version increment. The zero value is invalid so
// a missing "type" field in a changeset never silently becomes a patch.
type BumpType int

const (
	BumpInvalid BumpType = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

var bumpNames = map[BumpType]string{ //nolint:gochecknoglobals // closed enum lookup
	BumpPatch: "patch",
	BumpMinor: "minor",
	BumpMajor: "major",
}

// ParseBumpType converts "patch", "minor" or "major" (case-insensitive) into a BumpType.
func ParseBumpType(raw string) (BumpType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "patch":
		return BumpPatch, nil
	case "minor":
		return BumpMinor, nil
	case "major":
		return BumpMajor, nil
	default:
		return BumpInvalid, fmt.Errorf("unknown bump type %q (expected patch, minor or major)", raw)
	}
}

// Valid reports whether the bump type is one of patch, minor or major.
func (b BumpType) Valid() bool {
	_, ok := bumpNames[b]
	return ok
}

func (b BumpType) String() string {
	if name, ok := bumpNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BumpType(%d)", int(b))
}

// Max returns the more severe of the two bump types.
func (b BumpType) Max(other BumpType) BumpType {
	if other > b {
		return other
	}
	return b
}

func (b BumpType) MarshalJSON() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid bump type %d", int(b))
	}
	return json.Marshal(b.String())
}

func (b *BumpType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("bump type must be a string: %w", err)
	}
	parsed, err := ParseBumpType(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML and UnmarshalYAML keep changes.yaml files human-readable.
func (b BumpType) MarshalYAML() (interface{}, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid bump type %d", int(b))
	}
	return b.String(), nil
}

func (b *BumpType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseBumpType(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
