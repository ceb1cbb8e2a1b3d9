package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetOutput_CapturesLog(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Log("window [%d,%d)", 10, 19)
	LogIf(false, "hidden")
	Section("fetch")

	out := buf.String()
	if !strings.Contains(out, "window [10,19)") {
		t.Errorf("missing log line in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("LogIf(false) wrote output: %q", out)
	}
	if !strings.Contains(out, "=== fetch ===") {
		t.Errorf("missing section header in %q", out)
	}
	if !strings.Contains(out, prefix) {
		t.Errorf("missing prefix in %q", out)
	}
}

func TestSetOutput_NilDisables(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetOutput(nil)

	if Enabled() {
		t.Fatal("expected logging disabled")
	}
	Log("dropped")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestOpenFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tix.log")
	c, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	Log("first")
	SetOutput(nil)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "first") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestAssert_DisabledNeverPanics(t *testing.T) {
	SetOutput(nil)
	Assert(false, "ignored while disabled")
}
