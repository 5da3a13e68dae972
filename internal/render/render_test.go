package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agentx-labs/automatiza/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var testLabels = Labels{
	NoResults:       "No se encontraron resultados para la búsqueda.",
	ToolsHeading:    "Herramientas Clave",
	ToolsIcon:       "fas fa-tools",
	WorkflowHeading: "Flujo de Trabajo Típico",
	WorkflowIcon:    "fas fa-project-diagram",
}

var sales = catalog.AutomationCategory{
	Category:    "Automatización del Proceso de Ventas",
	Color:       "var(--c-sales)",
	Icon:        "fas fa-funnel-dollar",
	Description: "Calificar leads y automatizar campañas.",
	Tools:       []string{"HubSpot", "Zoho CRM"},
	Workflow:    []string{"Capturar leads", "Segmentar audiencia", "Calificar leads"},
}

func renderHTML(t *testing.T, nodes []*html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, nodes))
	return buf.String()
}

func TestCards_OneNodePerCategory(t *testing.T) {
	b := NewBuilder(testLabels)
	nodes := b.Cards(catalog.Default().All())

	require.Len(t, nodes, 6)
	for _, n := range nodes {
		assert.True(t, hasClass(n, ClassCard))
		assert.Nil(t, n.Parent)
	}
}

func TestCards_EmptyRendersPlaceholder(t *testing.T) {
	b := NewBuilder(testLabels)

	for _, input := range [][]catalog.AutomationCategory{nil, {}} {
		nodes := b.Cards(input)
		require.Len(t, nodes, 1)
		assert.True(t, hasClass(nodes[0], ClassNoResults))
		assert.Equal(t, testLabels.NoResults, textContent(nodes[0]))
	}
}

func TestCard_HTMLStructure(t *testing.T) {
	out := renderHTML(t, []*html.Node{NewBuilder(testLabels).Card(sales)})

	for _, want := range []string{
		`<div class="category-card" style="--category-color: var(--c-sales)">`,
		`<div class="category-header"><i class="fas fa-funnel-dollar"></i><h3>Automatización del Proceso de Ventas</h3></div>`,
		`<p class="card-description">Calificar leads y automatizar campañas.</p>`,
		`<h4><i class="fas fa-tools"></i> Herramientas Clave</h4>`,
		`<ul class="tools-list"><li>HubSpot</li><li>Zoho CRM</li></ul>`,
		`<h4><i class="fas fa-project-diagram"></i> Flujo de Trabajo Típico</h4>`,
		`<ol class="workflow-steps"><li>Capturar leads</li><li>Segmentar audiencia</li><li>Calificar leads</li></ol>`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestCard_EscapesText(t *testing.T) {
	c := catalog.AutomationCategory{
		Category:    `<script>alert("x")</script>`,
		Description: "A & B",
		Tools:       []string{"<b>bold</b>"},
	}
	out := renderHTML(t, []*html.Node{NewBuilder(testLabels).Card(c)})

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>bold</b>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "A &amp; B")
}

func TestCard_NoColorOmitsStyle(t *testing.T) {
	c := sales
	c.Color = ""
	out := renderHTML(t, []*html.Node{NewBuilder(testLabels).Card(c)})
	assert.NotContains(t, out, "style=")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(testLabels)
	require.NoError(t, WriteText(&buf, b.Cards([]catalog.AutomationCategory{sales})))

	want := strings.Join([]string{
		"Automatización del Proceso de Ventas",
		"  Calificar leads y automatizar campañas.",
		"  Herramientas Clave:",
		"    - HubSpot",
		"    - Zoho CRM",
		"  Flujo de Trabajo Típico:",
		"    1. Capturar leads",
		"    2. Segmentar audiencia",
		"    3. Calificar leads",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteText_Placeholder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, NewBuilder(testLabels).Cards(nil)))
	assert.Equal(t, testLabels.NoResults+"\n", buf.String())
}

func TestWriteText_BlankLineBetweenCards(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(testLabels)
	require.NoError(t, WriteText(&buf, b.Cards([]catalog.AutomationCategory{sales, sales})))
	assert.Equal(t, 1, strings.Count(buf.String(), "Calificar leads\n\nAutomatización"))
}

func TestContainer_Replace(t *testing.T) {
	c := NewContainer()
	b := NewBuilder(testLabels)

	require.NoError(t, c.Replace(b.Cards(catalog.Default().All())))
	assert.Len(t, c.Children(), 6)

	require.NoError(t, c.Replace(b.Cards([]catalog.AutomationCategory{sales})))
	children := c.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "Automatización del Proceso de Ventas", textContent(children[0].FirstChild))

	require.NoError(t, c.Replace(b.Cards(nil)))
	children = c.Children()
	require.Len(t, children, 1)
	assert.True(t, hasClass(children[0], ClassNoResults))

	out, err := c.HTML()
	require.NoError(t, err)
	assert.Equal(t, `<p class="no-results">`+testLabels.NoResults+"</p>\n", out)
	assert.Equal(t, ContainerID, attr(c.Root(), "id"))
}

func TestContainer_ReplaceReparentsNodes(t *testing.T) {
	first, second := NewContainer(), NewContainer()
	nodes := NewBuilder(testLabels).Cards([]catalog.AutomationCategory{sales})

	require.NoError(t, first.Replace(nodes))
	require.NoError(t, second.Replace(nodes))

	assert.Empty(t, first.Children())
	assert.Len(t, second.Children(), 1)
}

func TestWriterDisplay(t *testing.T) {
	nodes := NewBuilder(testLabels).Cards([]catalog.AutomationCategory{sales})

	var htmlBuf, textBuf bytes.Buffer
	require.NoError(t, NewWriterDisplay(&htmlBuf, FormatHTML).Replace(nodes))
	require.NoError(t, NewWriterDisplay(&textBuf, FormatText).Replace(nodes))

	assert.True(t, strings.HasPrefix(htmlBuf.String(), `<div class="category-card"`))
	assert.True(t, strings.HasPrefix(textBuf.String(), "Automatización del Proceso de Ventas\n"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"HTML", FormatHTML, false},
		{" html ", FormatHTML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPage(t *testing.T) {
	var buf bytes.Buffer
	data := PageData{
		Title:       "Herramientas & IA",
		Lang:        "es",
		Placeholder: "Buscar...",
		Nodes:       NewBuilder(testLabels).Cards([]catalog.AutomationCategory{sales}),
	}
	require.NoError(t, Page(&buf, data))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<html lang="es">`)
	assert.Contains(t, out, "<title>Herramientas &amp; IA</title>")
	assert.Contains(t, out, `id="search-input"`)
	assert.Contains(t, out, `<div id="tools-grid">`)
	assert.Contains(t, out, `<li>HubSpot</li>`)

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.NotNil(t, doc)
}

func TestDefaultPageData(t *testing.T) {
	data := DefaultPageData(nil)
	assert.Equal(t, "es", data.Lang)
	assert.NotEmpty(t, data.Title)
	assert.NotEmpty(t, data.Placeholder)
}
