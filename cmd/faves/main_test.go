package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/faves/assets"
	"github.com/MrSnakeDoc/faves/internal/catalog"
)

func TestRunCheckBundled(t *testing.T) {
	var out bytes.Buffer

	err := runCheck(&out, catalog.Source{FS: assets.Categories(), Pattern: catalog.DefaultPattern})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ books: 3 entries")
	assert.Contains(t, out.String(), "✓ video games: 2 entries")
}

func TestRunCheckReportsInvalidEntries(t *testing.T) {
	var out bytes.Buffer
	files := fstest.MapFS{
		"good.json": {Data: []byte(`[{"title": "ok"}]`)},
		"bad.json":  {Data: []byte(`[{"title": "ok"}, {"title": 3}]`)},
		"odd.json":  {Data: []byte(`{"not": "an array"}`)},
	}

	err := runCheck(&out, catalog.Source{FS: files, Pattern: catalog.DefaultPattern})

	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Contains(t, out.String(), "✗ bad: 1 entries, 1 invalid")
	assert.Contains(t, out.String(), "Entry 2: title must be a string")
	assert.Contains(t, out.String(), "✗ odd: not a list")
	assert.Contains(t, out.String(), "✓ good: 1 entries")
}

func TestRunCheckInvalidJSON(t *testing.T) {
	files := fstest.MapFS{"broken.json": {Data: []byte(`[`)}}

	err := runCheck(&bytes.Buffer{}, catalog.Source{FS: files, Pattern: catalog.DefaultPattern})

	require.Error(t, err)
	assert.NotErrorIs(t, err, errCheckFailed)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestCheckCommandDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(dir+"/films.json", `[{"title": "Alien", "year": "1979"}]`))

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "✓ films: 1 entries")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "faves "))
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
