package ui

import (
	"os"
	"testing"

	"github.com/vanderheijden86/tix/pkg/debug"
)

func TestMain(m *testing.M) {
	// Keep debug output and config reloads from the developer's environment
	// out of the tests.
	os.Unsetenv("TIX_DEBUG")
	os.Setenv("XDG_CONFIG_HOME", os.TempDir())
	debug.SetEnabled(false)

	os.Exit(m.Run())
}
