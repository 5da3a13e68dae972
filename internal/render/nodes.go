package render

import (
	"strings"

	"github.com/agentx-labs/automatiza/internal/branding"
	"github.com/agentx-labs/automatiza/internal/catalog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names shared by the node builder, the text serializer and the page.
const (
	ClassCard        = "category-card"
	ClassHeader      = "category-header"
	ClassContent     = "card-content"
	ClassDescription = "card-description"
	ClassTools       = "tools-list"
	ClassWorkflow    = "workflow-steps"
	ClassNoResults   = "no-results"
)

// Labels holds the fixed UI strings placed into every card.
type Labels struct {
	NoResults       string
	ToolsHeading    string
	ToolsIcon       string
	WorkflowHeading string
	WorkflowIcon    string
}

// DefaultLabels returns the labels from the embedded branding.
func DefaultLabels() Labels {
	return Labels{
		NoResults:       branding.NoResults(),
		ToolsHeading:    branding.ToolsHeading(),
		ToolsIcon:       branding.ToolsIcon(),
		WorkflowHeading: branding.WorkflowHeading(),
		WorkflowIcon:    branding.WorkflowIcon(),
	}
}

// Builder produces card nodes from categories.
type Builder struct {
	labels Labels
}

// NewBuilder returns a Builder using labels.
func NewBuilder(labels Labels) *Builder {
	return &Builder{labels: labels}
}

// Cards returns one card node per category, in order. For an empty input it
// returns a single "no results" placeholder. Every call returns fresh,
// detached nodes.
func (b *Builder) Cards(categories []catalog.AutomationCategory) []*html.Node {
	if len(categories) == 0 {
		return []*html.Node{b.Placeholder()}
	}
	nodes := make([]*html.Node, len(categories))
	for i, c := range categories {
		nodes[i] = b.Card(c)
	}
	return nodes
}

// Placeholder returns the node shown when nothing matches.
func (b *Builder) Placeholder() *html.Node {
	p := element(atom.P, class(ClassNoResults))
	p.AppendChild(text(b.labels.NoResults))
	return p
}

// Card builds the node tree for a single category:
//
//	div.category-card[style=--category-color]
//	  div.category-header > i.<icon> + h3
//	  div.card-content
//	    p.card-description
//	    div > h4 + ul.tools-list > li*
//	    div > h4 + ol.workflow-steps > li*
func (b *Builder) Card(c catalog.AutomationCategory) *html.Node {
	card := element(atom.Div, class(ClassCard))
	if c.Color != "" {
		card.Attr = append(card.Attr, html.Attribute{Key: "style", Val: "--category-color: " + c.Color})
	}

	header := element(atom.Div, class(ClassHeader))
	header.AppendChild(element(atom.I, class(c.Icon)))
	h3 := element(atom.H3)
	h3.AppendChild(text(c.Category))
	header.AppendChild(h3)
	card.AppendChild(header)

	content := element(atom.Div, class(ClassContent))
	desc := element(atom.P, class(ClassDescription))
	desc.AppendChild(text(c.Description))
	content.AppendChild(desc)
	content.AppendChild(section(b.labels.ToolsIcon, b.labels.ToolsHeading, atom.Ul, ClassTools, c.Tools))
	content.AppendChild(section(b.labels.WorkflowIcon, b.labels.WorkflowHeading, atom.Ol, ClassWorkflow, c.Workflow))
	card.AppendChild(content)

	return card
}

// section builds a headed list block.
func section(icon, heading string, list atom.Atom, listClass string, items []string) *html.Node {
	div := element(atom.Div)
	h4 := element(atom.H4)
	h4.AppendChild(element(atom.I, class(icon)))
	h4.AppendChild(text(" " + heading))
	div.AppendChild(h4)

	l := element(list, class(listClass))
	for _, item := range items {
		li := element(atom.Li)
		li.AppendChild(text(item))
		l.AppendChild(li)
	}
	div.AppendChild(l)
	return div
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func class(name string) html.Attribute {
	return html.Attribute{Key: "class", Val: name}
}

// attr returns the value of key on n, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether n carries the class name.
func hasClass(n *html.Node, name string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == name {
			return true
		}
	}
	return false
}

// textContent concatenates all text below n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
