package script

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultInterpreter is the scripting bridge binary used when none is configured.
const DefaultInterpreter = "osascript"

// Runner executes one script and returns its trimmed standard output.
// Implementations must not retry; a failure is returned to the caller as-is.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// ExecRunner runs scripts by spawning the interpreter binary once per call
// with a single -e argument, waiting for the process to exit.
type ExecRunner struct {
	// Bin is the interpreter binary. Empty means DefaultInterpreter.
	Bin string
}

// Run implements Runner. A missing interpreter or non-zero exit surfaces as
// an error carrying the process's stderr.
func (r *ExecRunner) Run(ctx context.Context, script string) (string, error) {
	bin := r.Bin
	if bin == "" {
		bin = DefaultInterpreter
	}

	cmd := exec.CommandContext(ctx, bin, "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s failed: %w: %s", bin, err, msg)
		}
		return "", fmt.Errorf("%s failed: %w", bin, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
