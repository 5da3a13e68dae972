package cli

import (
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/automatiza/internal/catalog"
	"github.com/agentx-labs/automatiza/internal/config"
	"github.com/agentx-labs/automatiza/internal/logging"
	"github.com/agentx-labs/automatiza/internal/render"
	"github.com/spf13/cobra"
)

// loadCatalog resolves the active catalog from --catalog, the environment,
// the config file, or the embedded default.
func loadCatalog() (*catalog.Catalog, error) {
	c, source, err := catalog.Resolve(catalogFlag)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	logging.Default().Debug().
		Str("source", source).
		Str("schema_version", c.Version()).
		Int("categories", c.Len()).
		Msg("catalog loaded")
	return c, nil
}

// resolveFormat returns the --format value, falling back to the "format"
// config key.
func resolveFormat(flag string) (render.Format, error) {
	if flag == "" {
		flag = config.Get(config.KeyFormat)
	}
	return render.ParseFormat(flag)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
