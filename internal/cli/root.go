package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/agentx-labs/automatiza/internal/branding"
	"github.com/agentx-labs/automatiza/internal/config"
	"github.com/agentx-labs/automatiza/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	catalogFlag  string
	logLevelFlag string
	verboseFlag  bool
	quietFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` muestra un catálogo de automatizaciones con IA por área de negocio
(soporte, marketing, ventas, finanzas, RRHH y análisis) y filtra las categorías
por nombre, descripción o herramienta.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logging.Configure(&logging.Config{
			Level:   determineLogLevel(),
			Format:  "auto",
			Output:  "stderr",
			NoColor: os.Getenv("NO_COLOR") != "",
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog file to use instead of the embedded catalog")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose logging (same as --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only log errors")
}

// determineLogLevel applies, highest first: --log-level, --quiet, --verbose,
// the log_level config key, then "warn" so logs stay out of rendered output.
func determineLogLevel() string {
	if logLevelFlag != "" {
		if !logging.IsValidLevel(logLevelFlag) {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", logLevelFlag, "info")
			return "info"
		}
		return logLevelFlag
	}
	if verboseFlag && quietFlag {
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using \"warn\"")
		return "warn"
	}
	if quietFlag {
		return "error"
	}
	if verboseFlag {
		return "debug"
	}
	if v := config.Get(config.KeyLogLevel); v != "" {
		return v
	}
	return "warn"
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the command's context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
