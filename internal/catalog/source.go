package catalog

import (
	"fmt"
	"os"

	"github.com/agentx-labs/automatiza/internal/branding"
	"github.com/agentx-labs/automatiza/internal/config"
)

// SourcePath returns the catalog override file, checking (in order):
// 1. the explicit path (e.g. the --catalog flag)
// 2. <PREFIX>_CATALOG env var
// 3. config key "catalog_file"
// An empty result means the embedded catalog.
func SourcePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(branding.EnvVar("CATALOG")); v != "" {
		return v
	}
	return config.Get(config.KeyCatalogFile)
}

// Load reads, validates and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data, path)
}

// Resolve loads the catalog named by SourcePath(explicit), or the embedded
// default when no override is configured. The returned string is the source
// used ("embedded" for the default).
func Resolve(explicit string) (*Catalog, string, error) {
	path := SourcePath(explicit)
	if path == "" {
		return Default(), "embedded", nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return c, path, nil
}
