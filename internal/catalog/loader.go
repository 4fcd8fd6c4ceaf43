// Package catalog loads the bundled category documents into an immutable Set.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects the category documents inside the asset filesystem.
const DefaultPattern = "*.json"

// ReservedPrefix marks route segments used by the server itself.
const ReservedPrefix = "_"

// reservedNames are page routes that sit next to /{name}.
var reservedNames = map[string]bool{
	"404": true,
}

// Reserved reports whether name can not be used as a category name.
func Reserved(name string) bool {
	return name == "" || strings.HasPrefix(name, ReservedPrefix) || reservedNames[name]
}

var (
	// ErrDuplicateCategory is returned when two documents share a base name.
	ErrDuplicateCategory = errors.New("duplicate category name")
	// ErrReservedName is returned for names that would shadow internal routes.
	ErrReservedName = errors.New("reserved category name")
)

// Source describes where category documents come from.
type Source struct {
	FS      fs.FS
	Pattern string
}

// Load reads every document of the source.
func (s Source) Load() (*Set, error) {
	return Load(s.FS, s.Pattern)
}

// Load parses every file of fsys matching pattern as a generic JSON value and
// keys it by the file's base name without extension. Any unreadable or
// syntactically invalid document fails the whole load.
func Load(fsys fs.FS, pattern string) (*Set, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no category filesystem configured")
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob categories with %q: %w", pattern, err)
	}

	items := make(map[string]any, len(matches))
	origins := make(map[string]string, len(matches))

	for _, p := range matches {
		name := Name(p)
		if Reserved(name) {
			return nil, fmt.Errorf("%w: %q (from %s)", ErrReservedName, name, p)
		}
		if prev, ok := origins[name]; ok {
			return nil, fmt.Errorf("%w: %q (from %s and %s)", ErrDuplicateCategory, name, prev, p)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read category file %s: %w", p, err)
		}

		content, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse category file %s: %w", p, err)
		}

		items[name] = content
		origins[name] = p
	}

	return New(items), nil
}

// Name derives a category name from a document path: "dir/video games.json"
// becomes "video games".
func Name(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Decode parses exactly one JSON value. Numbers are kept as json.Number so
// that they survive untouched until validation.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}
