package catalog

import (
	"encoding/json"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/faves/assets"
)

func TestLoadBundledCategories(t *testing.T) {
	fsys := assets.Categories()

	set, err := Load(fsys, DefaultPattern)
	require.NoError(t, err)

	files, err := fs.Glob(fsys, "*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	assert.Equal(t, len(files), set.Len(), "one category per bundled file")
	for _, f := range files {
		_, ok := set.Get(Name(f))
		assert.True(t, ok, "missing category for %s", f)
	}
}

func TestLoadKeysByBaseName(t *testing.T) {
	fsys := fstest.MapFS{
		"books.json":       {Data: []byte(`[{"title":"A"}]`)},
		"video games.json": {Data: []byte(`[]`)},
		"notes.txt":        {Data: []byte(`not json`)},
	}

	set, err := Load(fsys, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"books", "video games"}, set.Names())

	content, ok := set.Get("books")
	require.True(t, ok)
	arr, ok := content.([]any)
	require.True(t, ok)
	assert.Len(t, arr, 1)
}

func TestLoadNamesAreSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"zines.json":   {Data: []byte(`[]`)},
		"Albums.json":  {Data: []byte(`[]`)},
		"books.json":   {Data: []byte(`[]`)},
		"anime.json":   {Data: []byte(`{}`)},
		"comics.json":  {Data: []byte(`"x"`)},
		"podcast.json": {Data: []byte(`null`)},
	}

	set, err := Load(fsys, DefaultPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{"Albums", "anime", "books", "comics", "podcast", "zines"}, set.Names())
}

func TestLoadAcceptsNonArrayDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"odd.json": {Data: []byte(`{"not": "an array"}`)},
	}

	set, err := Load(fsys, DefaultPattern)
	require.NoError(t, err)

	content, ok := set.Get("odd")
	require.True(t, ok)
	assert.IsType(t, map[string]any{}, content)
}

func TestLoadInvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "truncated", data: `[{"title": "A"`},
		{name: "empty", data: ``},
		{name: "trailing data", data: `[] []`},
		{name: "garbage", data: `title: A`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"good.json": {Data: []byte(`[]`)},
				"bad.json":  {Data: []byte(tt.data)},
			}

			set, err := Load(fsys, DefaultPattern)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.Contains(t, err.Error(), "bad.json")
		})
	}
}

func TestLoadDuplicateNames(t *testing.T) {
	fsys := fstest.MapFS{
		"books.json":         {Data: []byte(`[]`)},
		"archive/books.json": {Data: []byte(`[]`)},
	}

	_, err := Load(fsys, "**/*.json")
	require.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestLoadReservedNames(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "internal prefix", file: "_api.json"},
		{name: "not-found page", file: "404.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"books.json": {Data: []byte(`[]`)},
				tt.file:      {Data: []byte(`[{"title":"Four"}]`)},
			}

			_, err := Load(fsys, DefaultPattern)
			require.ErrorIs(t, err, ErrReservedName)
			assert.Contains(t, err.Error(), tt.file)
		})
	}
}

func TestReserved(t *testing.T) {
	assert.True(t, Reserved(""))
	assert.True(t, Reserved("_static"))
	assert.True(t, Reserved("404"))
	assert.False(t, Reserved("books"))
	assert.False(t, Reserved("4040"))
}

func TestLoadNilFS(t *testing.T) {
	_, err := Load(nil, DefaultPattern)
	require.Error(t, err)
}

func TestDecodeKeepsNumbers(t *testing.T) {
	v, err := Decode([]byte(`{"year": 1999}`))
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1999"), obj["year"])
}

func TestName(t *testing.T) {
	tests := map[string]string{
		"books.json":           "books",
		"dir/video games.json": "video games",
		"a.b.json":             "a.b",
		"noext":                "noext",
	}
	for in, want := range tests {
		assert.Equal(t, want, Name(in), in)
	}
}

func TestSetNilSafe(t *testing.T) {
	var s *Set
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Names())
	_, ok := s.Get("x")
	assert.False(t, ok)
}

func TestNamesReturnsCopy(t *testing.T) {
	s := New(map[string]any{"a": []any{}, "b": []any{}})
	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.Names())
}
