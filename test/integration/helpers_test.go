//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir string // AUTOMATIZA_CONFIG_DIR
	WorkDir   string // catalog files and generated pages
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so config and catalog lookups are sandboxed. The env vars are restored after
// the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigDir: t.TempDir(),
		WorkDir:   t.TempDir(),
	}

	t.Setenv("AUTOMATIZA_CONFIG_DIR", env.ConfigDir)
	t.Setenv("AUTOMATIZA_CATALOG", "")
	t.Setenv("AUTOMATIZA_CATALOG_FILE", "")

	return env
}

// setupCatalog writes a two-category catalog into the work dir and returns
// its path.
func setupCatalog(t *testing.T, env *testEnv) string {
	t.Helper()

	return writeFile(t, filepath.Join(env.WorkDir, "catalog.yaml"), `schema_version: "1.0.0"
categories:
  - category: Automatización Legal
    color: "#6c5ce7"
    icon: fas fa-gavel
    description: Revisión de contratos y cumplimiento normativo.
    tools: [Harvey, Spellbook, Luminance]
    workflow:
      - Cargar contrato
      - Detectar cláusulas de riesgo
      - Proponer redacción alternativa
  - category: Automatización de Compras
    color: "#00b894"
    icon: fas fa-shopping-cart
    description: Órdenes de compra <urgentes> & proveedores.
    tools: [Coupa, SAP Ariba]
    workflow:
      - Recibir solicitud
      - Aprobar presupuesto
`)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

// assertFileContains fails the test if the file does not contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("expected %s to contain %q", path, substr)
	}
}
