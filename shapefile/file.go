package shapefile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gogpu/textpath"
)

// Save writes s to path, choosing the codec by extension.
func Save(path string, s Shape) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(f, s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // shape files are not secret
		return fmt.Errorf("shapefile: %w", err)
	}
	textpath.Logger().Debug("shapefile: saved",
		slog.String("path", path),
		slog.Int("points", len(s.Points)))
	return nil
}

// Load reads a shape from path, choosing the codec by extension.
func Load(path string) (Shape, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Shape{}, err
	}
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Shape{}, fmt.Errorf("shapefile: %w", err)
	}
	s, err := Unmarshal(f, data)
	if err != nil {
		return Shape{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Library is a directory of saved shapes, one file per name.
type Library struct {
	Dir    string
	Format Format
}

// ErrNotFound is returned by Library.Load for a missing shape.
var ErrNotFound = errors.New("shapefile: shape not found")

// Names lists saved shapes in lexical order. A missing directory is
// empty.
func (l Library) Names() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("shapefile: %w", err)
	}
	ext := "." + l.Format.String()
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	slices.Sort(names)
	return names, nil
}

// Save stores s under its name, replacing any previous version.
func (l Library) Save(s Shape) error {
	p, err := l.path(s.Name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("shapefile: %w", err)
	}
	return Save(p, s)
}

// Load reads the shape called name.
func (l Library) Load(name string) (Shape, error) {
	p, err := l.path(name)
	if err != nil {
		return Shape{}, err
	}
	s, err := Load(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Shape{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, err
}

// Delete removes the shape called name. Deleting a missing shape is not
// an error.
func (l Library) Delete(name string) error {
	p, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("shapefile: %w", err)
	}
	return nil
}

// path maps a shape name to its file, refusing names that would escape
// the directory.
func (l Library) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("shapefile: invalid shape name %q", name)
	}
	return filepath.Join(l.Dir, name+"."+l.Format.String()), nil
}
