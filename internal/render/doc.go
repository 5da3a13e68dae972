// Package render turns categories into a description of UI nodes and hands
// that description to a display.
//
// Cards are built as golang.org/x/net/html node trees: text only ever enters
// the tree as text nodes, so serialization escapes it. A Display receives the
// complete replacement set of children on every pass; Container keeps them in
// memory like a DOM element, WriterDisplay serializes them as HTML or as plain
// terminal text.
package render
