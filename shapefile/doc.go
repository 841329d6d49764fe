// Package shapefile stores editable point sets on disk.
//
// A [Shape] is an ordered list of points with a closed flag and a display
// name. It is written either as TOML, for hand editing, or as
// deterministic CBOR, for compact storage. Both encodings are canonical:
// saving a loaded file reproduces it byte for byte.
package shapefile
