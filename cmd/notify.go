package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/pkg/action"
	"github.com/scriptkit/lbaction/pkg/models"
)

// NewNotifyCmd returns the notify command.
func NewNotifyCmd(act **action.Action) *cobra.Command {
	var (
		text        string
		title       string
		subtitle    string
		callbackURL string
		afterDelay  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Post a notification center message",
		Long: `Post a notification through LaunchBar. All flags are optional; with none
given an empty notification titled "LaunchBar" is posted immediately.

Examples:
  lbaction notify --text "Build finished" --title CI
  lbaction notify --text "Stand up" --after-delay 25m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := &models.Notification{
				Text:        text,
				Title:       title,
				Subtitle:    subtitle,
				CallbackURL: callbackURL,
				AfterDelay:  afterDelay,
			}
			return (*act).DisplayNotification(cmd.Context(), n)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "notification body")
	cmd.Flags().StringVar(&title, "title", "", `notification title (default "LaunchBar")`)
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "notification subtitle")
	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "URL opened when the notification is clicked")
	cmd.Flags().DurationVar(&afterDelay, "after-delay", 0, "postpone delivery, e.g. 30s or 5m")

	return cmd
}
