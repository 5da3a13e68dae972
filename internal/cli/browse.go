package cli

import (
	"fmt"

	"github.com/agentx-labs/automatiza/internal/branding"
	"github.com/agentx-labs/automatiza/internal/render"
	"github.com/agentx-labs/automatiza/internal/view"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

var (
	browseFormat   string
	browseNoPrompt bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Filter the catalog interactively",
	Long: `Render the full catalog, then read search terms from stdin, one per line.

Every line replaces the current term and re-renders the matching categories.
An empty line shows the full catalog again. Stop with Ctrl-D or Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseFormat, "format", "", "Output format (text, html)")
	browseCmd.Flags().BoolVar(&browseNoPrompt, "no-prompt", false, "Do not print a prompt before each term")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	format, err := resolveFormat(browseFormat)
	if err != nil {
		return fmt.Errorf("resolving output format: %w", err)
	}

	v := view.New(c, render.NewWriterDisplay(cmd.OutOrStdout(), format))
	v.Load()

	var prompt func()
	if !browseNoPrompt {
		p := message.NewPrinter(branding.Language())
		errOut := cmd.ErrOrStderr()
		prompt = func() {
			p.Fprintf(errOut, "\n%s (%d) > ", branding.SearchPlaceholder(), c.Len())
		}
	}

	if err := v.Run(cmd.Context(), cmd.InOrStdin(), prompt); err != nil {
		return fmt.Errorf("browsing catalog: %w", err)
	}
	return nil
}
