package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/agentx-labs/automatiza/internal/manifest"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// SupportedVersions is the semver constraint a catalog file's schema_version
// must satisfy.
const SupportedVersions = "^1"

// ErrUnsupportedVersion is wrapped when a catalog's schema_version falls
// outside SupportedVersions or cannot be parsed.
var ErrUnsupportedVersion = errors.New("unsupported catalog schema version")

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// AutomationCategory is one automation domain with its tools and typical
// workflow. Tools and Workflow are in display order.
type AutomationCategory struct {
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
	Workflow    []string `json:"workflow"`
}

// Clone returns a copy that shares no slices with c.
func (c AutomationCategory) Clone() AutomationCategory {
	c.Tools = append([]string(nil), c.Tools...)
	c.Workflow = append([]string(nil), c.Workflow...)
	return c
}

// Catalog is an immutable, ordered list of categories. The zero value is an
// empty catalog.
type Catalog struct {
	version    string
	categories []AutomationCategory
}

// New builds a catalog from categories after checking version against
// SupportedVersions. The categories are copied.
func New(version string, categories []AutomationCategory) (*Catalog, error) {
	if err := checkVersion(version); err != nil {
		return nil, err
	}
	c := &Catalog{
		version:    version,
		categories: make([]AutomationCategory, len(categories)),
	}
	for i, cat := range categories {
		c.categories[i] = cat.Clone()
	}
	return c, nil
}

// FromManifest converts a parsed catalog file into a Catalog.
func FromManifest(m *manifest.CatalogManifest) (*Catalog, error) {
	categories := make([]AutomationCategory, len(m.Categories))
	for i, e := range m.Categories {
		categories[i] = AutomationCategory{
			Category:    e.Category,
			Color:       e.Color,
			Icon:        e.Icon,
			Description: e.Description,
			Tools:       e.Tools,
			Workflow:    e.Workflow,
		}
	}
	return New(m.SchemaVersion, categories)
}

// Parse validates catalog YAML against the schema and builds a Catalog.
// name is only used in error messages.
func Parse(data []byte, name string) (*Catalog, error) {
	m, err := manifest.ParseValidated(data, name)
	if err != nil {
		return nil, err
	}
	c, err := FromManifest(m)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}
	return c, nil
}

// Default returns the embedded catalog. It is parsed on first use only.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedCatalog, "embedded")
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// All returns every category in display order. The result is a deep copy;
// modifying it does not affect the catalog.
func (c *Catalog) All() []AutomationCategory {
	if c == nil {
		return nil
	}
	out := make([]AutomationCategory, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Clone()
	}
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.categories)
}

// Version returns the catalog's schema version.
func (c *Catalog) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// checkVersion strips a leading "v" and tests the version against
// SupportedVersions.
func checkVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedVersions, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, version, SupportedVersions)
	}
	return nil
}
