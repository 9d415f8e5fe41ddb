package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/scriptkit/lbaction/pkg/action"
)

// transforms maps --transform names to line functions.
var transforms = map[string]action.TransformFunc{
	"identity": func(line string) string { return line },
	"upper":    cases.Upper(language.Und).String,
	"lower":    cases.Lower(language.Und).String,
	"title":    cases.Title(language.Und).String,
	"trim":     strings.TrimSpace,
}

func transformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTextActionCmd returns the text-action command.
func NewTextActionCmd(act **action.Action) *cobra.Command {
	var (
		transform string
		joiner    string
	)

	cmd := &cobra.Command{
		Use:   "text-action [TEXT...]",
		Short: "Apply a line-wise transform and paste the result",
		Long: `Split every input on newlines, apply the transform to each line and paste
the joined result into the frontmost application. Holding the command key
when LaunchBar invokes the action previews the lines as a result list
instead of pasting.

Reads from stdin when no arguments are given.

Examples:
  lbaction text-action --transform upper "hello world"
  pbpaste | lbaction text-action --transform trim --joiner ", "`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := transforms[transform]
			if !ok {
				return fmt.Errorf("unknown transform %q (available: %s)", transform, strings.Join(transformNames(), ", "))
			}

			inputs := args
			if len(inputs) == 0 {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				inputs = []string{strings.TrimSuffix(string(in), "\n")}
			}

			return (*act).TextAction(cmd.Context(), inputs, fn, joiner)
		},
	}

	cmd.Flags().StringVar(&transform, "transform", "identity", "line transform: "+strings.Join(transformNames(), ", "))
	cmd.Flags().StringVar(&joiner, "joiner", "", `string placed between lines when pasting (default "\n")`)

	return cmd
}
