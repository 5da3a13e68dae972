// Package branding provides compile-time identity values and UI strings for the CLI.
//
// Forkers edit branding.yaml in this package; Go's //go:embed bakes it into the
// binary. Missing keys fall back to the hard defaults below.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName           string `yaml:"cli_name"`
	DisplayName       string `yaml:"display_name"`
	Description       string `yaml:"description"`
	HomeDir           string `yaml:"home_dir"`
	EnvPrefix         string `yaml:"env_prefix"`
	PageTitle         string `yaml:"page_title"`
	SearchPlaceholder string `yaml:"search_placeholder"`
	NoResults         string `yaml:"no_results"`
	ToolsHeading      string `yaml:"tools_heading"`
	ToolsIcon         string `yaml:"tools_icon"`
	WorkflowHeading   string `yaml:"workflow_heading"`
	WorkflowIcon      string `yaml:"workflow_icon"`
	Language          string `yaml:"language"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:           "automatiza",
			DisplayName:       "Automatiza IA",
			Description:       "Catálogo de automatizaciones con IA",
			HomeDir:           ".automatiza",
			EnvPrefix:         "AUTOMATIZA",
			PageTitle:         "Herramientas de Automatización con IA",
			SearchPlaceholder: "Buscar...",
			NoResults:         "No se encontraron resultados para la búsqueda.",
			ToolsHeading:      "Herramientas Clave",
			ToolsIcon:         "fas fa-tools",
			WorkflowHeading:   "Flujo de Trabajo Típico",
			WorkflowIcon:      "fas fa-project-diagram",
			Language:          "es",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "automatiza").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".automatiza").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AUTOMATIZA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PageTitle returns the title of the generated HTML page.
func PageTitle() string { load(); return defaults.PageTitle }

// SearchPlaceholder returns the placeholder text of the search field.
func SearchPlaceholder() string { load(); return defaults.SearchPlaceholder }

// NoResults returns the message shown when a search matches nothing.
func NoResults() string { load(); return defaults.NoResults }

// ToolsHeading returns the heading above each card's tool list.
func ToolsHeading() string { load(); return defaults.ToolsHeading }

// ToolsIcon returns the icon class of the tools heading.
func ToolsIcon() string { load(); return defaults.ToolsIcon }

// WorkflowHeading returns the heading above each card's workflow steps.
func WorkflowHeading() string { load(); return defaults.WorkflowHeading }

// WorkflowIcon returns the icon class of the workflow heading.
func WorkflowIcon() string { load(); return defaults.WorkflowIcon }

// Language returns the UI language tag. Unparseable values fall back to Spanish.
func Language() language.Tag {
	load()
	tag, err := language.Parse(defaults.Language)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("CATALOG") → "AUTOMATIZA_CATALOG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
