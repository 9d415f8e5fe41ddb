package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scriptkit/lbaction/pkg/action"
)

// NewConfigCmd returns the config command with all subcommands configured.
// The store lives in the action's support directory; running outside
// LaunchBar requires LB_SUPPORT_PATH (or an --env-file providing it).
func NewConfigCmd(act **action.Action) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write the action's persistent config store",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: "Print a config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := (*act).ConfigStore()
			if err != nil {
				return err
			}
			if !cfg.Has(args[0]) {
				return fmt.Errorf("key %q not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Get(args[0]))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := (*act).ConfigStore()
			if err != nil {
				return err
			}
			return cfg.Set(args[0], args[1])
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := (*act).ConfigStore()
			if err != nil {
				return err
			}
			return cfg.Delete(args[0])
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every stored config value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := (*act).ConfigStore()
			if err != nil {
				return err
			}
			all := cfg.All()
			if len(all) == 0 {
				return nil
			}
			data, err := yaml.Marshal(all)
			if err != nil {
				return fmt.Errorf("marshal settings: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	return configCmd
}
