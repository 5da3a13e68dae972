package cli

import (
	"fmt"

	"github.com/agentx-labs/automatiza/internal/render"
	"github.com/agentx-labs/automatiza/internal/view"
	"github.com/spf13/cobra"
)

var (
	listFormat string
	listJSON   bool
	listNames  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every category in the catalog",
	Long:  `Render the full catalog in display order, as it appears before any search.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "", "Output format (text, html)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output the catalog as JSON")
	listCmd.Flags().BoolVar(&listNames, "names", false, "Print category names only")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	if listJSON {
		return printJSON(cmd, c.All())
	}

	if listNames {
		for _, cat := range c.All() {
			fmt.Fprintln(cmd.OutOrStdout(), cat.Category)
		}
		return nil
	}

	format, err := resolveFormat(listFormat)
	if err != nil {
		return fmt.Errorf("resolving output format: %w", err)
	}

	view.New(c, render.NewWriterDisplay(cmd.OutOrStdout(), format)).Load()
	return nil
}
