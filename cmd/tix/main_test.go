package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/tix/pkg/config"
)

func noEnv(string) string { return "" }

func TestParseFlags_Defaults(t *testing.T) {
	o, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg := config.DefaultConfig()
	o.apply(&cfg)
	if cfg != config.DefaultConfig() {
		t.Errorf("unset flags changed the config: %+v", cfg)
	}
}

func TestParseFlags_RejectsArguments(t *testing.T) {
	if _, err := parseFlags([]string{"extra"}); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "ui:\n  item_height: 5\n  gap: 2\ndata:\n  count: 300\n  latency: 2s\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	o, err := parseFlags([]string{"--config", path, "--gap", "1", "--store", "sqlite"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	env := map[string]string{"TIX_COUNT": "400", "TIX_GAP": "3"}
	cfg, err := o.loadConfig(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.UI.ItemHeight != 5 {
		t.Errorf("item height = %d, want 5 from file", cfg.UI.ItemHeight)
	}
	if cfg.Data.Count != 400 {
		t.Errorf("count = %d, want 400 from env", cfg.Data.Count)
	}
	if cfg.UI.Gap != 1 {
		t.Errorf("gap = %d, want 1 from flag", cfg.UI.Gap)
	}
	if cfg.Data.Latency != 2*time.Second {
		t.Errorf("latency = %v, want 2s from file", cfg.Data.Latency)
	}
	if cfg.Data.Store != "sqlite" {
		t.Errorf("store = %q, want sqlite", cfg.Data.Store)
	}
}

func TestLoadConfig_InvalidStoreFlag(t *testing.T) {
	o, err := parseFlags([]string{"--config", "", "--store", "postgres"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if _, err := o.loadConfig(noEnv); err == nil {
		t.Fatal("expected error for unknown store")
	}
}

func TestRobotWindow_ListScenario(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.ItemHeight = 70
	cfg.UI.Gap = 8
	cfg.Data.Count = 10000

	rw := buildRobotWindow(cfg, 700, 700)
	if rw.Window.Start != 10 || rw.Window.End != 19 || rw.Window.VisibleCount != 9 {
		t.Errorf("window = %+v, want [10,19) with 9 visible", rw.Window)
	}
	if rw.Window.TotalHeight != 700000 {
		t.Errorf("total height = %d", rw.Window.TotalHeight)
	}
	if len(rw.RowTops) != 9 || rw.RowTops[0] != 700 || rw.RowTops[1] != 778 {
		t.Errorf("row tops = %v", rw.RowTops)
	}
}

func TestRun_RobotWindowJSON(t *testing.T) {
	var out bytes.Buffer
	args := []string{"--config", "", "--robot-window", "--count", "100", "--item-height", "3", "--offset", "30", "--height", "12"}
	if err := run(args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var got robotWindow
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if got.Window.Start != 10 || got.Window.End != 14 {
		t.Errorf("window = [%d,%d), want [10,14)", got.Window.Start, got.Window.End)
	}
	if got.ItemCount != 100 || got.MaxScrollOffset != 288 {
		t.Errorf("items %d, max offset %d", got.ItemCount, got.MaxScrollOffset)
	}
	if got.Metrics != nil {
		t.Error("metrics included without --robot-metrics")
	}
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--version"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "tix v") {
		t.Errorf("version output = %q", out.String())
	}
}
