package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/pkg/action"
)

// NewRemainActiveCmd returns the remain-active command.
func NewRemainActiveCmd(act **action.Action) *cobra.Command {
	return &cobra.Command{
		Use:   "remain-active",
		Short: "Keep LaunchBar open after the current action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*act).RemainActive(cmd.Context())
		},
	}
}

// NewHasFocusCmd returns the has-focus command.
func NewHasFocusCmd(act **action.Action) *cobra.Command {
	return &cobra.Command{
		Use:   "has-focus",
		Short: "Report whether LaunchBar has keyboard focus",
		Long:  `Prints "true" or "false". Exits non-zero only if the bridge itself fails.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			focused, err := (*act).HasKeyboardFocus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), focused)
			return nil
		},
	}
}
