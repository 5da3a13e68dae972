package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/automatiza/internal/branding"
	"github.com/agentx-labs/automatiza/internal/catalog"
	"github.com/agentx-labs/automatiza/internal/config"
	"github.com/agentx-labs/automatiza/internal/logging"
	"github.com/agentx-labs/automatiza/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	checkConfig  bool
	checkCatalog bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Verify the config file and settings")
	doctorCmd.Flags().BoolVar(&checkCatalog, "check-catalog", false, "Verify the active catalog source")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check settings and the active catalog",
	Long:  `Run diagnostic checks on the configuration and the catalog that would be displayed.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// If no specific flag, run all checks.
		if !checkConfig && !checkCatalog {
			runConfigCheck(out)
			return runCatalogCheck(out)
		}

		if checkConfig {
			runConfigCheck(out)
		}
		if checkCatalog {
			return runCatalogCheck(out)
		}
		return nil
	},
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, "Config check:")

	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [INFO] No config file at %s (defaults in use)\n", path)
	} else {
		fmt.Fprintf(w, "  [ OK ] Config file %s\n", path)
	}

	if lvl := config.Get(config.KeyLogLevel); lvl != "" && !logging.IsValidLevel(lvl) {
		fmt.Fprintf(w, "  [WARN] %s %q is not a known level\n", config.KeyLogLevel, lvl)
	}

	if _, err := resolveFormat(""); err != nil {
		fmt.Fprintf(w, "  [WARN] %s: %v\n", config.KeyFormat, err)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s = %s\n", config.KeyFormat, config.Get(config.KeyFormat))
	}

	fmt.Fprintf(w, "  [INFO] Language %s\n", branding.Language())
}

func runCatalogCheck(w io.Writer) error {
	fmt.Fprintln(w, "Catalog check:")

	path := catalog.SourcePath(catalogFlag)
	if path == "" {
		c := catalog.Default()
		fmt.Fprintf(w, "  [ OK ] Embedded catalog (schema_version %s, %d categories)\n", c.Version(), c.Len())
		return nil
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %s does not match the catalog schema:\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "         %s\n", issue)
		}
		return result.Err()
	}

	c, err := catalog.Load(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(w, "  [ OK ] %s (schema_version %s, %d categories)\n", path, c.Version(), c.Len())
	if c.Len() == 0 {
		fmt.Fprintln(w, "  [WARN] Catalog is empty; every search shows the no-results message")
	}
	return nil
}
