package manifest

import (
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParse_ValidCatalog(t *testing.T) {
	m, err := Parse(testPath("valid-catalog.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if m.SchemaVersion != "1.0.0" {
		t.Errorf("SchemaVersion = %q, want %q", m.SchemaVersion, "1.0.0")
	}
	if len(m.Categories) != 2 {
		t.Fatalf("Categories len = %d, want 2", len(m.Categories))
	}

	first := m.Categories[0]
	if first.Category != "Automatización de Soporte al Cliente" {
		t.Errorf("Categories[0].Category = %q", first.Category)
	}
	if first.Icon != "fas fa-headset" {
		t.Errorf("Categories[0].Icon = %q, want %q", first.Icon, "fas fa-headset")
	}
	if first.Color != "var(--c-customer-support)" {
		t.Errorf("Categories[0].Color = %q, want %q", first.Color, "var(--c-customer-support)")
	}
	wantTools := []string{"ChatGPT", "Zendesk AI", "Intercom"}
	if len(first.Tools) != len(wantTools) {
		t.Fatalf("Tools len = %d, want %d", len(first.Tools), len(wantTools))
	}
	for i, tool := range wantTools {
		if first.Tools[i] != tool {
			t.Errorf("Tools[%d] = %q, want %q", i, first.Tools[i], tool)
		}
	}
	if first.Workflow[2] != "Integrar con CRM" {
		t.Errorf("Workflow[2] = %q, want %q", first.Workflow[2], "Integrar con CRM")
	}
}

func TestParse_FileNotFound(t *testing.T) {
	_, err := Parse(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
