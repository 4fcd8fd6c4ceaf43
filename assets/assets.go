// Package assets bundles the category documents, the site settings and the
// stylesheet into the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed categories/*.json site.yaml static/*
var files embed.FS

// Categories returns the bundled category documents, one JSON file per
// category, rooted so that file names carry no directory prefix.
func Categories() fs.FS {
	return mustSub("categories")
}

// Static returns the files served under /_/static/.
func Static() fs.FS {
	return mustSub("static")
}

// SiteYAML returns the bundled site settings document.
func SiteYAML() []byte {
	data, err := files.ReadFile("site.yaml")
	if err != nil {
		panic(err)
	}
	return data
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
