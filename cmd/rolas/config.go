package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var configShowSource bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long: `Show the effective configuration after merging defaults, rolas.yaml, and
ROLAS_ environment variables. Nested keys map to environment variables with
dots replaced by underscores: query.legacy_where is ROLAS_QUERY_LEGACY_WHERE,
database.driver is ROLAS_DATABASE_DRIVER.

The database password is omitted when empty.`,
	Example: `  # Show effective configuration
  rolas config show

  # Show configuration with source file path
  rolas config show --source

  # Check that a SQLite database and escaped literals are picked up
  ROLAS_DATABASE_DRIVER=sqlite ROLAS_DATABASE_NAME=music.db ROLAS_QUERY_ESCAPE_LITERALS=true rolas config show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if configShowSource {
			if configPath != "" {
				_, _ = fmt.Fprintf(out, "Config file: %s\n\n", configPath)
			} else {
				_, _ = fmt.Fprintln(out, "Config file: (none, using defaults)")
				_, _ = fmt.Fprintln(out)
			}
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowSource, "source", false, "show config file source")
	configCmd.AddCommand(configShowCmd)
}
