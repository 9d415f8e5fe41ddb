// Package script builds AppleScript commands for LaunchBar and runs them
// through the osascript interpreter. All caller-supplied text is escaped here
// so call sites cannot construct an injectable command by accident.
package script

import (
	"fmt"
	"strings"
)

// TargetApp is the application every built command is addressed to.
const TargetApp = "LaunchBar"

// Quote returns s as a valid AppleScript string literal. Backslashes and
// double quotes are escaped so the content of s cannot terminate the literal
// or introduce additional statements.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// Tell addresses one or more statements to the given application. A single
// statement uses the inline `tell ... to` form; multiple statements produce a
// tell block.
func Tell(app string, body ...string) string {
	switch len(body) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("tell application %s to %s", Quote(app), body[0])
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "tell application %s\n", Quote(app))
		for _, stmt := range body {
			b.WriteString("\t")
			b.WriteString(stmt)
			b.WriteString("\n")
		}
		b.WriteString("end tell")
		return b.String()
	}
}
