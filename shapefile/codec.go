package shapefile

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
)

// Format selects an encoding.
type Format int

const (
	// FormatTOML is human-editable TOML.
	FormatTOML Format = iota

	// FormatCBOR is deterministic CBOR (RFC 8949 core deterministic
	// encoding).
	FormatCBOR
)

// String returns the file extension of the format, without the dot.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborDec, err = cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Marshal encodes s in format f.
func Marshal(f Format, s Shape) ([]byte, error) {
	r, err := toRecord(s)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatTOML:
		return toml.Marshal(r)
	case FormatCBOR:
		return cborEnc.Marshal(r)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Unmarshal decodes data in format f. Unknown fields are rejected.
func Unmarshal(f Format, data []byte) (Shape, error) {
	var r record
	switch f {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&r); err != nil {
			return Shape{}, fmt.Errorf("shapefile: failed to decode toml: %w", err)
		}
	case FormatCBOR:
		if err := cborDec.Unmarshal(data, &r); err != nil {
			return Shape{}, fmt.Errorf("shapefile: failed to decode cbor: %w", err)
		}
	default:
		return Shape{}, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return fromRecord(r)
}

// MarshalTOML encodes s as TOML.
func MarshalTOML(s Shape) ([]byte, error) { return Marshal(FormatTOML, s) }

// UnmarshalTOML decodes a TOML shape.
func UnmarshalTOML(data []byte) (Shape, error) { return Unmarshal(FormatTOML, data) }

// MarshalCBOR encodes s as deterministic CBOR.
func MarshalCBOR(s Shape) ([]byte, error) { return Marshal(FormatCBOR, s) }

// UnmarshalCBOR decodes a CBOR shape.
func UnmarshalCBOR(data []byte) (Shape, error) { return Unmarshal(FormatCBOR, data) }
