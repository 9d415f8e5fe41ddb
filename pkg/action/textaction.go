package action

import (
	"context"
	"strings"

	"github.com/scriptkit/lbaction/pkg/models"
)

// DefaultJoiner separates transformed lines when pasting.
const DefaultJoiner = "\n"

// TransformFunc maps one line of text to one line of text.
type TransformFunc func(line string) string

// TransformLines splits every input on newline boundaries, applies transform
// to each resulting line in order, and returns the flattened line sequence.
func TransformLines(inputs []string, transform TransformFunc) []string {
	var out []string
	for _, input := range inputs {
		for _, line := range strings.Split(input, "\n") {
			out = append(out, transform(line))
		}
	}
	return out
}

// TextAction runs a line-wise text transform over inputs. Normally the
// transformed lines are joined and pasted into the frontmost application.
// When the command key was held at invocation time, the lines are written to
// stdout as a result list instead, so the user can preview the output rather
// than inject it. An empty joiner means DefaultJoiner.
func (a *Action) TextAction(ctx context.Context, inputs []string, transform TransformFunc, joiner string) error {
	if joiner == "" {
		joiner = DefaultJoiner
	}

	lines := TransformLines(inputs, transform)

	if a.Env.CommandKey {
		items := make([]models.Item, len(lines))
		for i, line := range lines {
			items[i] = models.Item{Title: line}
		}
		return a.Output(items)
	}

	return a.Paste(ctx, strings.Join(lines, joiner))
}
