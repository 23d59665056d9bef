package main

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed levels/*.yaml levels/*.tengo
var levelsFS embed.FS

// loadLevelAsset reads a level file by name, preferring an on-disk copy in
// levels/ so edits don't need a rebuild, falling back to the embedded one.
func loadLevelAsset(name string) ([]byte, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return levelsFS.ReadFile("levels/" + clean)
}
