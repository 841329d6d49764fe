package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a settings file extension other than
// .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("settings: unknown format")

// Format is a settings file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Decode parses data over the defaults and validates the result. Unknown
// keys are rejected.
func Decode(f Format, data []byte) (Settings, error) {
	s := Default()
	switch f {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Settings{}, fmt.Errorf("settings: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves the defaults.
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("settings: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Encode serializes s.
func Encode(f Format, s Settings) ([]byte, error) {
	switch f {
	case FormatTOML:
		return toml.Marshal(s)
	case FormatYAML:
		return yaml.Marshal(s)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
}

// Load reads settings from path, choosing the format by extension.
func Load(path string) (Settings, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	s, err := Decode(f, data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, choosing the format by extension.
func Save(path string, s Settings) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, s)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // settings are not secret
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}
