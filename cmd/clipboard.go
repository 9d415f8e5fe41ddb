package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/pkg/action"
)

// NewClipboardCmd returns the clipboard command with all subcommands configured.
func NewClipboardCmd(act **action.Action) *cobra.Command {
	clipboardCmd := &cobra.Command{
		Use:   "clipboard",
		Short: "Read, set or clear the system clipboard",
	}

	clipboardCmd.AddCommand(&cobra.Command{
		Use:   "set TEXT",
		Short: "Replace the clipboard contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*act).SetClipboardString(cmd.Context(), args[0])
		},
	})

	clipboardCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the clipboard contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := (*act).GetClipboardString(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	})

	clipboardCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*act).ClearClipboard(cmd.Context())
		},
	})

	return clipboardCmd
}
