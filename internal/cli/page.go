package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/automatiza/internal/logging"
	"github.com/agentx-labs/automatiza/internal/render"
	"github.com/spf13/cobra"
)

var (
	pageOutput string
	pageTitle  string
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Write the catalog as a static HTML page",
	Long: `Write an HTML page with one card per category. Without -o the page is
written to stdout.

The page is a static snapshot of the catalog: it carries no script, so the
search field (id "search-input") does not filter on its own. Attach a script
that filters the cards in "tools-grid", or use "search" and "browse" instead.`,
	Args: cobra.NoArgs,
	RunE: runPage,
}

func init() {
	pageCmd.Flags().StringVarP(&pageOutput, "output", "o", "", "Output file (default: stdout)")
	pageCmd.Flags().StringVar(&pageTitle, "title", "", "Page title (default: branding page title)")
	rootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	data := render.DefaultPageData(render.NewBuilder(render.DefaultLabels()).Cards(c.All()))
	if pageTitle != "" {
		data.Title = pageTitle
	}

	var buf bytes.Buffer
	if err := render.Page(&buf, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	if pageOutput == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(pageOutput); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(pageOutput, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing page %s: %w", pageOutput, err)
	}

	logging.Default().Info().Str("path", pageOutput).Int("categories", c.Len()).Msg("page written")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", pageOutput)
	return nil
}
