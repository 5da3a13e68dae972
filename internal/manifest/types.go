package manifest

// CatalogManifest is the on-disk form of a catalog.
type CatalogManifest struct {
	SchemaVersion string          `yaml:"schema_version" json:"schema_version"`
	Categories    []CategoryEntry `yaml:"categories" json:"categories"`
}

// CategoryEntry is one automation category as written in a catalog file.
// Tools and Workflow keep file order; that order is the display order.
type CategoryEntry struct {
	Category    string   `yaml:"category" json:"category"`
	Color       string   `yaml:"color,omitempty" json:"color,omitempty"`
	Icon        string   `yaml:"icon,omitempty" json:"icon,omitempty"`
	Description string   `yaml:"description" json:"description"`
	Tools       []string `yaml:"tools" json:"tools"`
	Workflow    []string `yaml:"workflow" json:"workflow"`
}
