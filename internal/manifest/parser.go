package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse reads a catalog file and unmarshals it. It does not validate; call
// Validate (or ParseValidated) for schema checks.
func Parse(path string) (*CatalogManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, path)
}

// ParseBytes unmarshals catalog YAML. name is only used in error messages.
func ParseBytes(data []byte, name string) (*CatalogManifest, error) {
	var m CatalogManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", name, err)
	}
	return &m, nil
}

// ParseValidated validates data against the catalog schema and, if valid,
// unmarshals it. Schema violations are returned as an error wrapping ErrInvalid.
func ParseValidated(data []byte, name string) (*CatalogManifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating catalog %s: %w", name, err)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}
	return ParseBytes(data, name)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
