// Package environ reads the LB_* environment variables LaunchBar sets for an
// action process and exposes them as a typed, read-only snapshot.
package environ

import "os"

// Variable names set by LaunchBar for action scripts.
const (
	VarActionPath      = "LB_ACTION_PATH"
	VarCachePath       = "LB_CACHE_PATH"
	VarSupportPath     = "LB_SUPPORT_PATH"
	VarDebugLogEnabled = "LB_DEBUG_LOG_ENABLED"
	VarLaunchBarPath   = "LB_LAUNCHBAR_PATH"
	VarScriptType      = "LB_SCRIPT_TYPE"
	VarCommandKey      = "LB_OPTION_COMMAND_KEY"
	VarAlternateKey    = "LB_OPTION_ALTERNATE_KEY"
	VarShiftKey        = "LB_OPTION_SHIFT_KEY"
	VarControlKey      = "LB_OPTION_CONTROL_KEY"
	VarSpaceKey        = "LB_OPTION_SPACE_KEY"
	VarRunInBackground = "LB_OPTION_RUN_IN_BACKGROUND"
	VarLiveFeedback    = "LB_OPTION_LIVE_FEEDBACK"
)

// Snapshot holds the action environment as it was when the snapshot was taken.
// It is not updated if the underlying environment changes afterwards.
type Snapshot struct {
	ActionPath    string `yaml:"action_path"`
	CachePath     string `yaml:"cache_path"`
	SupportPath   string `yaml:"support_path"`
	LaunchBarPath string `yaml:"launchbar_path"`
	ScriptType    string `yaml:"script_type"`

	DebugLogEnabled bool `yaml:"debug_log_enabled"`

	// Modifier keys held when the action was invoked.
	CommandKey   bool `yaml:"command_key"`
	AlternateKey bool `yaml:"alternate_key"`
	ShiftKey     bool `yaml:"shift_key"`
	ControlKey   bool `yaml:"control_key"`
	SpaceKey     bool `yaml:"space_key"`

	RunInBackground bool `yaml:"run_in_background"`
	LiveFeedback    bool `yaml:"live_feedback"`
}

// LookupFunc resolves one environment variable, os.LookupEnv style.
type LookupFunc func(key string) (string, bool)

// FromEnviron builds a snapshot using the given lookup function.
// Boolean variables follow LaunchBar's convention: true iff the value is
// exactly "1"; absent or any other value means false.
func FromEnviron(lookup LookupFunc) *Snapshot {
	str := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	flag := func(key string) bool {
		v, _ := lookup(key)
		return v == "1"
	}

	return &Snapshot{
		ActionPath:      str(VarActionPath),
		CachePath:       str(VarCachePath),
		SupportPath:     str(VarSupportPath),
		LaunchBarPath:   str(VarLaunchBarPath),
		ScriptType:      str(VarScriptType),
		DebugLogEnabled: flag(VarDebugLogEnabled),
		CommandKey:      flag(VarCommandKey),
		AlternateKey:    flag(VarAlternateKey),
		ShiftKey:        flag(VarShiftKey),
		ControlKey:      flag(VarControlKey),
		SpaceKey:        flag(VarSpaceKey),
		RunInBackground: flag(VarRunInBackground),
		LiveFeedback:    flag(VarLiveFeedback),
	}
}

// FromOS builds a snapshot from the process environment.
func FromOS() *Snapshot {
	return FromEnviron(os.LookupEnv)
}
