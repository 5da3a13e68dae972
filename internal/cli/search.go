package cli

import (
	"fmt"

	"github.com/agentx-labs/automatiza/internal/render"
	"github.com/agentx-labs/automatiza/internal/view"
	"github.com/spf13/cobra"
)

var (
	searchFormat string
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Filter the catalog by category, description or tool",
	Long: `Filter the automation catalog and render the matching categories.

The term matches against category names, descriptions and tool names
(case-insensitive substring, surrounding whitespace ignored). An empty term
shows the full catalog. When nothing matches, a single "no results" message
is rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchFormat, "format", "", "Output format (text, html)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output matching categories as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := ""
	if len(args) > 0 {
		term = args[0]
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	if searchJSON {
		// Filter without a display; JSON goes straight to stdout.
		return printJSON(cmd, view.New(c, nil).Filter(term))
	}

	format, err := resolveFormat(searchFormat)
	if err != nil {
		return fmt.Errorf("resolving output format: %w", err)
	}

	view.New(c, render.NewWriterDisplay(cmd.OutOrStdout(), format)).Filter(term)
	return nil
}
