package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/agentx-labs/automatiza/internal/branding"
	"golang.org/x/net/html"
)

//go:embed templates/page.html.tmpl
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

// InputID is the id of the search field in the page.
const InputID = "search-input"

// PageData fills the static page shell.
type PageData struct {
	Title       string
	Lang        string
	Placeholder string
	Nodes       []*html.Node
}

// DefaultPageData returns page data with the branding strings and nodes.
func DefaultPageData(nodes []*html.Node) PageData {
	return PageData{
		Title:       branding.PageTitle(),
		Lang:        branding.Language().String(),
		Placeholder: branding.SearchPlaceholder(),
		Nodes:       nodes,
	}
}

// Page writes a complete HTML document: the title, the search field and the
// card container pre-filled with data.Nodes.
func Page(w io.Writer, data PageData) error {
	var cards strings.Builder
	if err := WriteHTML(&cards, data.Nodes); err != nil {
		return err
	}

	err := page.Execute(w, struct {
		Title       string
		Lang        string
		Placeholder string
		InputID     string
		ContainerID string
		Cards       template.HTML
	}{
		Title:       data.Title,
		Lang:        data.Lang,
		Placeholder: data.Placeholder,
		InputID:     InputID,
		ContainerID: ContainerID,
		// Produced by html.Render from text nodes, so already escaped.
		Cards: template.HTML(cards.String()),
	})
	if err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}
