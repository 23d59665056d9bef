package profiles

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed assets/*.yaml
var assetsFS embed.FS

// DiskDir is where Load looks for on-disk overrides of the embedded
// defaults, relative to the working directory.
const DiskDir = "profiles/assets"

// Load reads a profile asset by name, preferring an on-disk override so
// designers can edit without rebuilding, falling back to the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanAssetPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	return assetsFS.ReadFile("assets/" + clean)
}

// DiskPath maps an asset name to its on-disk override location.
func DiskPath(name string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(cleanAssetPath(name)))
}

// Names lists the embedded profile files, in lexical order.
func Names() []string {
	entries, err := assetsFS.ReadDir("assets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "profiles/")
	s = strings.TrimPrefix(s, "assets/")
	return s
}
