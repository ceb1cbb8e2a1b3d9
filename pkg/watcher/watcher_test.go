package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var callCount atomic.Int32

	// Trigger rapidly 10 times
	for i := 0; i < 10; i++ {
		d.Trigger(func() {
			callCount.Add(1)
		})
		time.Sleep(10 * time.Millisecond)
	}

	// Wait for debounce to complete
	time.Sleep(150 * time.Millisecond)

	if count := callCount.Load(); count != 1 {
		t.Errorf("expected 1 callback invocation, got %d", count)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var called atomic.Bool
	d.Trigger(func() {
		called.Store(true)
	})
	d.Cancel()

	time.Sleep(100 * time.Millisecond)

	if called.Load() {
		t.Error("callback should not have been invoked after cancel")
	}
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	d := NewDebouncer(0)
	if d.Duration() != DefaultDebounceDuration {
		t.Errorf("expected default duration %v, got %v", DefaultDebounceDuration, d.Duration())
	}
}

func waitFor(t *testing.T, ch <-chan struct{}, within time.Duration) bool {
	t.Helper()
	select {
	case <-ch:
		return true
	case <-time.After(within):
		return false
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "ui:\n  gap: 0\n")

	var calls atomic.Int32
	w, err := NewWatcher(path,
		WithDebounceDuration(50*time.Millisecond),
		WithOnChange(func() { calls.Add(1) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// Give watcher time to initialize
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, path, "ui:\n  gap: 1\n")

	if !waitFor(t, w.Changed(), 3*time.Second) {
		t.Fatal("expected change to be detected")
	}
	if calls.Load() == 0 {
		t.Error("OnChange callback not invoked")
	}
}

func TestWatcher_PollingFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "a")

	w, err := NewWatcher(path,
		WithForcePoll(true),
		WithPollInterval(30*time.Millisecond),
		WithDebounceDuration(20*time.Millisecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Fatal("expected polling mode")
	}

	time.Sleep(50 * time.Millisecond)
	writeConfig(t, path, "a longer body so the size changes")

	if !waitFor(t, w.Changed(), 3*time.Second) {
		t.Fatal("polling did not detect change")
	}
}

func TestWatcher_EnvForcePoll(t *testing.T) {
	t.Setenv("TIX_FORCE_POLL", "1")
	path := filepath.Join(t.TempDir(), "config.yaml")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Error("TIX_FORCE_POLL should select polling")
	}
}

func TestWatcher_CreatedLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	w, err := NewWatcher(path,
		WithForcePoll(true),
		WithPollInterval(30*time.Millisecond),
		WithDebounceDuration(20*time.Millisecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeConfig(t, path, "ui: {}\n")
	if !waitFor(t, w.Changed(), 3*time.Second) {
		t.Fatal("creation of the watched file was not reported")
	}
}

func TestWatcher_FileRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "x")

	removed := make(chan struct{}, 1)
	w, err := NewWatcher(path,
		WithForcePoll(true),
		WithPollInterval(30*time.Millisecond),
		WithOnError(func(err error) {
			if errors.Is(err, ErrFileRemoved) {
				select {
				case removed <- struct{}{}:
				default:
				}
			}
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, removed, 3*time.Second) {
		t.Fatal("expected ErrFileRemoved")
	}
}

func TestWatcher_StartStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}

	if w.IsStarted() {
		t.Error("watcher should not be started before Start")
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start = %v, want ErrAlreadyStarted", err)
	}
	w.Stop()
	if w.IsStarted() {
		t.Error("watcher still started after Stop")
	}
	w.Stop() // idempotent

	if err := w.Start(); err != nil {
		t.Errorf("restart failed: %v", err)
	}
	w.Stop()
}

func TestWatcher_PathIsAbsolute(t *testing.T) {
	w, err := NewWatcher("config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(w.Path()) {
		t.Errorf("Path() = %q, want absolute", w.Path())
	}
	if w.PollInterval() != DefaultPollInterval {
		t.Errorf("PollInterval() = %v", w.PollInterval())
	}
}

func TestFilesystemType_String(t *testing.T) {
	tests := map[FilesystemType]string{
		FSTypeUnknown: "unknown",
		FSTypeLocal:   "local",
		FSTypeNFS:     "nfs",
		FSTypeSMB:     "smb",
		FSTypeFUSE:    "fuse",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
	if !isRemoteFilesystem(FSTypeNFS) || isRemoteFilesystem(FSTypeLocal) {
		t.Error("isRemoteFilesystem misclassifies")
	}
}

func TestDetectFilesystemType_EmptyPath(t *testing.T) {
	if got := DetectFilesystemType(""); got != FSTypeUnknown {
		t.Errorf("DetectFilesystemType(\"\") = %v", got)
	}
}

func TestEnvBool(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		t.Setenv("TIX_TEST_BOOL", v)
		if !envBool("TIX_TEST_BOOL") {
			t.Errorf("envBool(%q) = false", v)
		}
	}
	for _, v := range []string{"", "0", "off", "nope"} {
		t.Setenv("TIX_TEST_BOOL", v)
		if envBool("TIX_TEST_BOOL") {
			t.Errorf("envBool(%q) = true", v)
		}
	}
}
