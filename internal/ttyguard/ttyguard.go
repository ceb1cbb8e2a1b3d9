// Package ttyguard keeps terminal capability probes out of scripted output.
//
// Import it for side effects before any package that styles output:
//
//	import _ "github.com/vanderheijden86/tix/internal/ttyguard"
package ttyguard

import (
	"os"
	"strings"
)

// init runs before Bubble Tea acquires the terminal (and before the theme
// detects the color profile).
//
// Color and background detection can emit OSC/DSR control sequences to
// stdout. Those are harmless in a real terminal but end up inside the JSON of
// --robot-* invocations. Termenv skips the probes when CI is set.
func init() {
	if os.Getenv("CI") != "" {
		return
	}
	if !shouldSuppressTTYQueries(os.Args, os.Getenv("TIX_ROBOT") == "1", os.Getenv("TIX_TEST_MODE") != "") {
		return
	}
	_ = os.Setenv("CI", "1")
}

func shouldSuppressTTYQueries(args []string, envRobot, envTest bool) bool {
	if envRobot || envTest {
		return true
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "--robot-") {
			return true
		}
		switch arg {
		case "--version", "--help", "-h":
			return true
		}
	}
	return false
}
