package action

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptkit/lbaction/pkg/environ"
)

func upper(line string) string { return strings.ToUpper(line) }

func identity(line string) string { return line }

func TestTransformLines(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{"multiline plus single", []string{"a\nb", "c"}, []string{"A", "B", "C"}},
		{"single line", []string{"single line"}, []string{"SINGLE LINE"}},
		{"empty input yields one empty line", []string{""}, []string{""}},
		{"no inputs", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformLines(tt.inputs, upper))
		})
	}
}

func TestTextActionPastesJoinedLines(t *testing.T) {
	a, runner, stdout := newTestAction(nil)

	err := a.TextAction(context.Background(), []string{"a\nb", "c"}, upper, "-")
	require.NoError(t, err)

	require.Len(t, runner.scripts, 1)
	assert.Equal(t,
		`tell application "LaunchBar" to paste in frontmost application "A-B-C"`,
		runner.scripts[0])
	assert.Empty(t, stdout.String())
}

func TestTextActionPreviewWithCommandKey(t *testing.T) {
	a, runner, stdout := newTestAction(&environ.Snapshot{CommandKey: true})

	err := a.TextAction(context.Background(), []string{"a\nb", "c"}, upper, "-")
	require.NoError(t, err)

	// Preview mode prints items instead of spawning a process.
	assert.Empty(t, runner.scripts)
	assert.JSONEq(t,
		`[{"title":"A"},{"title":"B"},{"title":"C"}]`,
		strings.TrimSpace(stdout.String()))
}

func TestTextActionDefaultJoiner(t *testing.T) {
	a, runner, _ := newTestAction(nil)

	err := a.TextAction(context.Background(), []string{"one", "two"}, identity, "")
	require.NoError(t, err)

	assert.Equal(t,
		"tell application \"LaunchBar\" to paste in frontmost application \"one\ntwo\"",
		runner.scripts[0])
}

func TestTextActionSingleInputUnchanged(t *testing.T) {
	a, runner, _ := newTestAction(nil)

	err := a.TextAction(context.Background(), []string{"single line"}, identity, "")
	require.NoError(t, err)

	assert.Equal(t,
		`tell application "LaunchBar" to paste in frontmost application "single line"`,
		runner.scripts[0])
}
