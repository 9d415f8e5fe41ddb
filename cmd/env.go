package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scriptkit/lbaction/pkg/action"
	"github.com/scriptkit/lbaction/pkg/environ"
)

// NewEnvCmd returns the env command.
func NewEnvCmd(act **action.Action) *cobra.Command {
	var yamlOutput bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the LaunchBar environment snapshot",
		Long: `Print the snapshot of LB_* variables taken at startup. Useful for
checking what LaunchBar passed to an action, or what an --env-file
simulation would look like to one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := (*act).Env

			if yamlOutput {
				data, err := yaml.Marshal(snap)
				if err != nil {
					return fmt.Errorf("marshal snapshot: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}

			printSnapshot(cmd, snap)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "output the snapshot as YAML")

	return cmd
}

func printSnapshot(cmd *cobra.Command, snap *environ.Snapshot) {
	key := color.New(color.FgCyan).SprintFunc()
	on := color.New(color.FgGreen).SprintFunc()
	off := color.New(color.Faint).SprintFunc()

	out := cmd.OutOrStdout()

	str := func(name, value string) {
		if value == "" {
			fmt.Fprintf(out, "%s %s\n", key(name+":"), off("(unset)"))
			return
		}
		fmt.Fprintf(out, "%s %s\n", key(name+":"), value)
	}
	flag := func(name string, value bool) {
		if value {
			fmt.Fprintf(out, "%s %s\n", key(name+":"), on("true"))
			return
		}
		fmt.Fprintf(out, "%s %s\n", key(name+":"), off("false"))
	}

	str("action path", snap.ActionPath)
	str("cache path", snap.CachePath)
	str("support path", snap.SupportPath)
	str("launchbar path", snap.LaunchBarPath)
	str("script type", snap.ScriptType)
	flag("debug log", snap.DebugLogEnabled)
	flag("command key", snap.CommandKey)
	flag("alternate key", snap.AlternateKey)
	flag("shift key", snap.ShiftKey)
	flag("control key", snap.ControlKey)
	flag("space key", snap.SpaceKey)
	flag("run in background", snap.RunInBackground)
	flag("live feedback", snap.LiveFeedback)
}
