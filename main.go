package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/cmd"
	"github.com/scriptkit/lbaction/pkg/action"
	"github.com/scriptkit/lbaction/pkg/environ"
)

var (
	act         *action.Action
	envFile     string
	interpreter string
	debug       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lbaction",
		Short: "A toolkit for scripting LaunchBar actions",
		Long: `lbaction wraps LaunchBar's AppleScript surface so actions can hide the
window, drive the clipboard, paste text, post notifications, invoke system
services and run line-wise text transforms from a shell or a compiled action.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load LB_* variables from a dotenv file before taking the snapshot")
	rootCmd.PersistentFlags().StringVar(&interpreter, "osascript", "", "path to the osascript binary (default: osascript from PATH)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every bridge command to stderr")

	rootCmd.PersistentPreRunE = func(cobraCmd *cobra.Command, args []string) error {
		// This runs once before any subcommand.
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("load env file: %w", err)
			}
		}

		// The snapshot is taken once here and never refreshed.
		env := environ.FromOS()

		var opts []action.Option
		if interpreter != "" {
			opts = append(opts, action.WithInterpreter(interpreter))
		}
		if debug {
			opts = append(opts, action.WithDebug())
		}
		act = action.New(env, opts...)
		return nil
	}

	rootCmd.AddCommand(cmd.NewHideCmd(&act))
	rootCmd.AddCommand(cmd.NewRemainActiveCmd(&act))
	rootCmd.AddCommand(cmd.NewHasFocusCmd(&act))
	rootCmd.AddCommand(cmd.NewClipboardCmd(&act))
	rootCmd.AddCommand(cmd.NewPasteCmd(&act))
	rootCmd.AddCommand(cmd.NewServiceCmd(&act))
	rootCmd.AddCommand(cmd.NewNotifyCmd(&act))
	rootCmd.AddCommand(cmd.NewLargeTypeCmd(&act))
	rootCmd.AddCommand(cmd.NewTextActionCmd(&act))
	rootCmd.AddCommand(cmd.NewEnvCmd(&act))
	rootCmd.AddCommand(cmd.NewConfigCmd(&act))
	rootCmd.AddCommand(cmd.NewCacheCmd(&act))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
