package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnviron(t *testing.T) {
	env := map[string]string{
		VarActionPath:      "/Users/me/Library/Application Support/LaunchBar/Actions/Test.lbaction",
		VarCachePath:       "/Users/me/Library/Caches/at.obdev.LaunchBar/Actions/test",
		VarSupportPath:     "/Users/me/Library/Application Support/LaunchBar/Action Support/test",
		VarLaunchBarPath:   "/Applications/LaunchBar.app",
		VarScriptType:      "default",
		VarDebugLogEnabled: "1",
		VarCommandKey:      "1",
		VarShiftKey:        "0",
	}

	snap := FromEnviron(mapLookup(env))

	assert.Equal(t, env[VarActionPath], snap.ActionPath)
	assert.Equal(t, env[VarCachePath], snap.CachePath)
	assert.Equal(t, env[VarSupportPath], snap.SupportPath)
	assert.Equal(t, env[VarLaunchBarPath], snap.LaunchBarPath)
	assert.Equal(t, "default", snap.ScriptType)
	assert.True(t, snap.DebugLogEnabled)
	assert.True(t, snap.CommandKey)
	assert.False(t, snap.ShiftKey)
}

func TestFromEnvironBoolConvention(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  bool
	}{
		{"literal one", "1", true, true},
		{"zero", "0", true, false},
		{"true word", "true", true, false},
		{"yes word", "yes", true, false},
		{"empty string", "", true, false},
		{"absent", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{}
			if tt.set {
				env[VarCommandKey] = tt.value
			}
			snap := FromEnviron(mapLookup(env))
			assert.Equal(t, tt.want, snap.CommandKey)
		})
	}
}

func TestFromEnvironAbsentStringsAreEmpty(t *testing.T) {
	snap := FromEnviron(mapLookup(map[string]string{}))

	assert.Empty(t, snap.ActionPath)
	assert.Empty(t, snap.CachePath)
	assert.Empty(t, snap.SupportPath)
	assert.Empty(t, snap.LaunchBarPath)
	assert.Empty(t, snap.ScriptType)
	assert.False(t, snap.RunInBackground)
	assert.False(t, snap.LiveFeedback)
}
