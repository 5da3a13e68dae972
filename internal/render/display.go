package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Format selects how a WriterDisplay serializes nodes.
type Format string

const (
	// FormatText writes plain terminal text.
	FormatText Format = "text"
	// FormatHTML writes HTML fragments.
	FormatHTML Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatHTML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s or %s)", s, FormatText, FormatHTML)
	}
}

// Display is the container a view writes into. Replace swaps all current
// children for nodes.
type Display interface {
	Replace(nodes []*html.Node) error
}

// Container is an in-memory display: an element whose children are replaced
// wholesale on every pass.
type Container struct {
	root *html.Node
}

// ContainerID is the id of the card grid element.
const ContainerID = "tools-grid"

// NewContainer returns an empty div#tools-grid container.
func NewContainer() *Container {
	return &Container{root: element(atom.Div, html.Attribute{Key: "id", Val: ContainerID})}
}

// Replace removes every child and appends nodes. Nodes that still belong to
// another parent are detached first.
func (c *Container) Replace(nodes []*html.Node) error {
	for child := c.root.FirstChild; child != nil; child = c.root.FirstChild {
		c.root.RemoveChild(child)
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		c.root.AppendChild(n)
	}
	return nil
}

// Children returns the current children in order.
func (c *Container) Children() []*html.Node {
	var out []*html.Node
	for child := c.root.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, child)
	}
	return out
}

// Root returns the container element itself.
func (c *Container) Root() *html.Node {
	return c.root
}

// HTML serializes the current children.
func (c *Container) HTML() (string, error) {
	var b strings.Builder
	if err := WriteHTML(&b, c.Children()); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriterDisplay serializes every replacement to W.
type WriterDisplay struct {
	W      io.Writer
	Format Format
}

// NewWriterDisplay returns a display writing format to w.
func NewWriterDisplay(w io.Writer, format Format) *WriterDisplay {
	return &WriterDisplay{W: w, Format: format}
}

// Replace writes nodes to the underlying writer.
func (d *WriterDisplay) Replace(nodes []*html.Node) error {
	if d.Format == FormatHTML {
		return WriteHTML(d.W, nodes)
	}
	return WriteText(d.W, nodes)
}

// WriteHTML renders nodes as an HTML fragment, one top-level node per line.
func WriteHTML(w io.Writer, nodes []*html.Node) error {
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering %s: %w", n.Data, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteText renders nodes as terminal text: the card title, its description,
// the bulleted tools and the numbered workflow steps, with a blank line between
// cards.
func WriteText(w io.Writer, nodes []*html.Node) error {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteString("\n")
		}
		writeTextNode(&b, n)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextNode(b *strings.Builder, n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}

	switch {
	case n.DataAtom == atom.H3:
		fmt.Fprintf(b, "%s\n", strings.TrimSpace(textContent(n)))
	case hasClass(n, ClassNoResults):
		fmt.Fprintf(b, "%s\n", strings.TrimSpace(textContent(n)))
	case hasClass(n, ClassDescription):
		fmt.Fprintf(b, "  %s\n", strings.TrimSpace(textContent(n)))
	case n.DataAtom == atom.H4:
		fmt.Fprintf(b, "  %s:\n", strings.TrimSpace(textContent(n)))
	case n.DataAtom == atom.Ul || n.DataAtom == atom.Ol:
		i := 0
		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if li.DataAtom != atom.Li {
				continue
			}
			i++
			item := strings.TrimSpace(textContent(li))
			if n.DataAtom == atom.Ol {
				fmt.Fprintf(b, "    %d. %s\n", i, item)
			} else {
				fmt.Fprintf(b, "    - %s\n", item)
			}
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeTextNode(b, c)
		}
	}
}
