package models

// Item represents one entry in the result list an action returns to LaunchBar.
// All fields are optional; LaunchBar ignores keys it does not know.
type Item struct {
	Title                  string `json:"title,omitempty"`
	Subtitle               string `json:"subtitle,omitempty"`
	URL                    string `json:"url,omitempty"`
	Path                   string `json:"path,omitempty"`
	Icon                   string `json:"icon,omitempty"`
	IconFont               string `json:"iconFont,omitempty"`
	IconIsTemplate         bool   `json:"iconIsTemplate,omitempty"`
	QuickLookURL           string `json:"quickLookURL,omitempty"`
	Action                 string `json:"action,omitempty"`
	ActionArgument         string `json:"actionArgument,omitempty"`
	ActionReturnsItems     bool   `json:"actionReturnsItems,omitempty"`
	ActionRunsInBackground bool   `json:"actionRunsInBackground,omitempty"`
	ActionBundleIdentifier string `json:"actionBundleIdentifier,omitempty"`

	// Children are shown when the user navigates into this item.
	Children []Item `json:"children,omitempty"`
}
