// Package testutil serves descriptor fixtures to tests and benchmarks.
package testutil

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"testing"
)

//go:embed testdata
var fixtures embed.FS

// Descriptor returns the named fixture from testdata, failing tb when it
// is missing.
func Descriptor(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := fs.ReadFile(fixtures, path.Join("testdata", name))
	if err != nil {
		tb.Fatalf("fixture %s: %v", name, err)
	}
	return data
}

// Descriptors lists the fixture names with the given extension in
// lexical order.
func Descriptors(ext string) []string {
	entries, _ := fs.ReadDir(fixtures, "testdata")
	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ext {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names
}
