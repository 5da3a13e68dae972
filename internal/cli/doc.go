// Package cli defines the Cobra command tree for the automatiza CLI. Each file
// in this package registers one top-level command (list, search, browse, etc.)
// with the root command. Command implementations delegate to internal packages
// for catalog loading, filtering and rendering, and only handle flag parsing
// and output selection.
package cli
