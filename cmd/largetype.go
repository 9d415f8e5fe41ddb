package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/pkg/action"
)

// NewLargeTypeCmd returns the large-type command.
func NewLargeTypeCmd(act **action.Action) *cobra.Command {
	return &cobra.Command{
		Use:   "large-type TEXT",
		Short: "Display text across the screen in large type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*act).LargeType(cmd.Context(), args[0])
		},
	}
}
