// Package action is the scripting facade a LaunchBar action is written
// against. Every operation translates into one AppleScript command addressed
// to LaunchBar and executed through the scripting bridge; results come back
// either as process output or as JSON written to stdout, which LaunchBar
// reads as the action's result list.
package action

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/scriptkit/lbaction/pkg/environ"
	"github.com/scriptkit/lbaction/pkg/models"
	"github.com/scriptkit/lbaction/pkg/script"
)

// Action is the facade. It holds the environment snapshot taken at startup,
// the scripting bridge runner, and the two persistence handles rooted at the
// paths LaunchBar provides. It is not safe for concurrent use; LaunchBar runs
// one action invocation at a time.
type Action struct {
	Env *environ.Snapshot

	runner script.Runner
	stdout io.Writer
	log    *logrus.Logger

	stores *Stores
}

// Option configures an Action.
type Option func(*Action)

// WithRunner replaces the scripting bridge runner.
func WithRunner(r script.Runner) Option {
	return func(a *Action) { a.runner = r }
}

// WithStdout redirects the result-list output channel.
func WithStdout(w io.Writer) Option {
	return func(a *Action) { a.stdout = w }
}

// WithLogger replaces the logger.
func WithLogger(log *logrus.Logger) Option {
	return func(a *Action) { a.log = log }
}

// WithDebug raises the log level to debug regardless of what the environment
// snapshot says.
func WithDebug() Option {
	return func(a *Action) { a.log.SetLevel(logrus.DebugLevel) }
}

// WithInterpreter overrides the bridge binary used by the default runner.
func WithInterpreter(bin string) Option {
	return func(a *Action) { a.runner = &script.ExecRunner{Bin: bin} }
}

// New builds the facade from an environment snapshot. The config and cache
// stores are opened on first use, not here, so an action that never touches
// persistence pays nothing for it.
func New(env *environ.Snapshot, opts ...Option) *Action {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if env.DebugLogEnabled {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	a := &Action{
		Env:    env,
		runner: &script.ExecRunner{},
		stdout: os.Stdout,
		log:    log,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.stores = &Stores{env: env}
	return a
}

// Logger exposes the facade's logger so actions can share it.
func (a *Action) Logger() *logrus.Logger {
	return a.log
}

// run sends one statement to LaunchBar and waits for the process to exit.
func (a *Action) run(ctx context.Context, statement string) (string, error) {
	s := script.Tell(script.TargetApp, statement)
	a.log.WithField("script", s).Debug("running bridge command")
	return a.runner.Run(ctx, s)
}

// Output writes v as JSON to stdout. LaunchBar interprets this as the
// action's result list.
func (a *Action) Output(v any) error {
	enc := json.NewEncoder(a.stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// Hide hides the LaunchBar window.
func (a *Action) Hide(ctx context.Context) error {
	_, err := a.run(ctx, "hide")
	return err
}

// RemainActive keeps LaunchBar open after the current action finishes.
func (a *Action) RemainActive(ctx context.Context) error {
	_, err := a.run(ctx, "remain active")
	return err
}

// HasKeyboardFocus reports whether LaunchBar currently has keyboard focus.
// Anything but the literal output "true" counts as false.
func (a *Action) HasKeyboardFocus(ctx context.Context) (bool, error) {
	out, err := a.run(ctx, "has keyboard focus")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "true", nil
}

// SetClipboardString replaces the system clipboard with text.
func (a *Action) SetClipboardString(ctx context.Context, text string) error {
	_, err := a.run(ctx, "set the clipboard to "+script.Quote(text))
	return err
}

// GetClipboardString returns the current clipboard text.
func (a *Action) GetClipboardString(ctx context.Context) (string, error) {
	return a.run(ctx, "get the clipboard")
}

// ClearClipboard empties the system clipboard.
func (a *Action) ClearClipboard(ctx context.Context) error {
	_, err := a.run(ctx, "clear the clipboard")
	return err
}

// Paste inserts text into the frontmost application as if typed.
func (a *Action) Paste(ctx context.Context, text string) error {
	_, err := a.run(ctx, "paste in frontmost application "+script.Quote(text))
	return err
}

// PerformService invokes a named system service. argument may be empty.
func (a *Action) PerformService(ctx context.Context, service string, argument string) error {
	stmt := "perform service " + script.Quote(service)
	if argument != "" {
		stmt += " with string " + script.Quote(argument)
	}
	_, err := a.run(ctx, stmt)
	return err
}

// LargeType shows text across the screen in large type.
func (a *Action) LargeType(ctx context.Context, text string) error {
	_, err := a.run(ctx, "display in large type "+script.Quote(text))
	return err
}

// DisplayNotification posts a notification center message. A nil value posts
// the default notification (empty text, title "LaunchBar", no delay).
func (a *Action) DisplayNotification(ctx context.Context, n *models.Notification) error {
	opts := n.WithDefaults()

	stmt := "display in notification center " + script.Quote(opts.Text) +
		" with title " + script.Quote(opts.Title)
	if opts.Subtitle != "" {
		stmt += " subtitle " + script.Quote(opts.Subtitle)
	}
	if opts.CallbackURL != "" {
		stmt += " callback URL " + script.Quote(opts.CallbackURL)
	}
	if opts.AfterDelay > 0 {
		stmt += fmt.Sprintf(" after delay %g", opts.AfterDelay.Seconds())
	}

	_, err := a.run(ctx, stmt)
	return err
}
