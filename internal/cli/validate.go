package cli

import (
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/automatiza/internal/catalog"
	"github.com/agentx-labs/automatiza/internal/manifest"
	"github.com/spf13/cobra"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file against the catalog schema",
	Long: `Validate a catalog file against the embedded JSON schema and the supported
schema_version range. Without an argument the active catalog is checked
(--catalog, the environment, the config file, or the embedded catalog).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output the validation result as JSON")
	rootCmd.AddCommand(validateCmd)
}

// validateReport is the --json shape of a validation run.
type validateReport struct {
	Source     string                     `json:"source"`
	Valid      bool                       `json:"valid"`
	Categories int                        `json:"categories,omitempty"`
	Version    string                     `json:"schema_version,omitempty"`
	Issues     []manifest.ValidationIssue `json:"issues,omitempty"`
	Error      string                     `json:"error,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := catalog.SourcePath(catalogFlag)
	if len(args) > 0 {
		path = args[0]
	}

	report := validateSource(path)

	if validateJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling validation result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		printValidateReport(cmd, report)
	}

	if !report.Valid {
		return fmt.Errorf("%s: %w", report.Source, manifest.ErrInvalid)
	}
	return nil
}

func validateSource(path string) validateReport {
	if path == "" {
		c := catalog.Default()
		return validateReport{Source: "embedded", Valid: true, Categories: c.Len(), Version: c.Version()}
	}

	report := validateReport{Source: path}
	result, err := manifest.ValidateFile(path)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	if !result.Valid {
		report.Issues = result.Issues
		return report
	}

	// The schema accepts any version string; the supported range is checked
	// when the catalog is built.
	c, err := catalog.Load(path)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Valid = true
	report.Categories = c.Len()
	report.Version = c.Version()
	return report
}

func printValidateReport(cmd *cobra.Command, r validateReport) {
	out := cmd.OutOrStdout()
	if r.Valid {
		fmt.Fprintf(out, "%s: valid (schema_version %s, %d categories)\n", r.Source, r.Version, r.Categories)
		return
	}

	fmt.Fprintf(out, "%s: invalid\n", r.Source)
	if r.Error != "" {
		fmt.Fprintf(out, "  %s\n", r.Error)
	}
	for _, issue := range r.Issues {
		fmt.Fprintf(out, "  %s\n", issue)
	}
}
