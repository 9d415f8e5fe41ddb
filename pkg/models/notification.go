package models

import "time"

// DefaultNotificationTitle is used when a notification has no explicit title.
const DefaultNotificationTitle = "LaunchBar"

// Notification describes a notification center message. The zero value is
// valid: it posts an empty notification titled "LaunchBar" with no delay.
type Notification struct {
	Text     string
	Title    string
	Subtitle string

	// CallbackURL is opened when the user clicks the notification.
	CallbackURL string

	// AfterDelay postpones delivery. Zero means deliver immediately.
	AfterDelay time.Duration
}

// WithDefaults returns a copy with unset fields replaced by their defaults.
// A nil receiver yields the all-defaults notification.
func (n *Notification) WithDefaults() Notification {
	if n == nil {
		return Notification{Title: DefaultNotificationTitle}
	}
	out := *n
	if out.Title == "" {
		out.Title = DefaultNotificationTitle
	}
	return out
}
