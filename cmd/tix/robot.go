package main

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/tix/pkg/config"
	"github.com/vanderheijden86/tix/pkg/metrics"
	"github.com/vanderheijden86/tix/pkg/window"
)

// robotWindow is the --robot-window output.
type robotWindow struct {
	Geometry        window.Geometry   `json:"geometry"`
	ScrollOffset    int               `json:"scroll_offset"`
	ItemCount       int               `json:"item_count"`
	Window          window.Window     `json:"window"`
	RowTops         []int             `json:"row_tops"`
	MaxScrollOffset int               `json:"max_scroll_offset"`
	Metrics         *metrics.Snapshot `json:"metrics,omitempty"`
}

func buildRobotWindow(cfg config.Config, offset, height int) robotWindow {
	g := cfg.Geometry()
	g.ContainerHeight = height
	g = g.Normalized()
	n := cfg.Data.Count

	var w window.Window
	func() {
		defer metrics.Timer(metrics.WindowCompute)()
		w = window.Compute(g, offset, n)
	}()

	tops := make([]int, 0, w.Len())
	for i := w.Start; i < w.End; i++ {
		tops = append(tops, window.RowTop(g, w, i))
	}
	return robotWindow{
		Geometry:        g,
		ScrollOffset:    offset,
		ItemCount:       n,
		Window:          w,
		RowTops:         tops,
		MaxScrollOffset: window.MaxScrollOffset(g, n),
	}
}

func writeRobotWindow(out io.Writer, cfg config.Config, offset, height int, withMetrics bool) error {
	rw := buildRobotWindow(cfg, offset, height)
	if withMetrics {
		snap := metrics.Collect()
		rw.Metrics = &snap
	}
	return writeJSON(out, rw)
}

func writeMetrics(out io.Writer) error {
	return writeJSON(out, metrics.Collect())
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
