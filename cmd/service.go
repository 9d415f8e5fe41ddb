package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/pkg/action"
)

// NewServiceCmd returns the service command.
func NewServiceCmd(act **action.Action) *cobra.Command {
	return &cobra.Command{
		Use:   "service NAME [ARGUMENT]",
		Short: "Invoke a named system service",
		Long: `Invoke a macOS service by name, optionally passing a string argument.

Examples:
  lbaction service "Make New Sticky Note" "call dentist"
  lbaction service "New TextEdit Window Containing Selection"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			argument := ""
			if len(args) == 2 {
				argument = args[1]
			}
			return (*act).PerformService(cmd.Context(), args[0], argument)
		},
	}
}
