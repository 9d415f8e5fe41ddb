package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/pkg/action"
)

// NewPasteCmd returns the paste command.
func NewPasteCmd(act **action.Action) *cobra.Command {
	return &cobra.Command{
		Use:   "paste [TEXT]",
		Short: "Paste text into the frontmost application",
		Long: `Paste text into the frontmost application as if typed.

Reads from stdin when no argument is given:
  echo "hello" | lbaction paste`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = strings.TrimSuffix(string(in), "\n")
			}
			return (*act).Paste(cmd.Context(), text)
		},
	}
}
