package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcePath_Precedence(t *testing.T) {
	t.Setenv("AUTOMATIZA_CATALOG", "/from/env.yaml")

	assert.Equal(t, "/from/flag.yaml", SourcePath("/from/flag.yaml"))
	assert.Equal(t, "/from/env.yaml", SourcePath(""))
}

func TestResolve_Embedded(t *testing.T) {
	t.Setenv("AUTOMATIZA_CATALOG", "")

	c, source, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", source)
	assert.Same(t, Default(), c)
}

func TestResolve_Override(t *testing.T) {
	path := writeCatalog(t, smallCatalog)
	t.Setenv("AUTOMATIZA_CATALOG", path)

	c, source, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 1, c.Len())
}

func TestResolve_OverrideError(t *testing.T) {
	_, source, err := Resolve("/does/not/exist.yaml")
	assert.Error(t, err)
	assert.Equal(t, "/does/not/exist.yaml", source)
}
