package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/pkg/action"
)

// NewHideCmd returns the hide command.
func NewHideCmd(act **action.Action) *cobra.Command {
	return &cobra.Command{
		Use:   "hide",
		Short: "Hide the LaunchBar window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*act).Hide(cmd.Context())
		},
	}
}
