package window

import (
	"testing"

	"pgregory.net/rapid"
)

func TestThumb(t *testing.T) {
	tests := []struct {
		name                      string
		track, content, container int
		offset                    int
		wantPos, wantSize         int
	}{
		{"content fits", 10, 5, 10, 0, 0, 10},
		{"empty content", 10, 0, 10, 0, 0, 10},
		{"no track", 0, 100, 10, 0, 0, 0},
		{"top", 10, 100, 10, 0, 0, 1},
		{"bottom", 10, 100, 10, 90, 9, 1},
		{"half", 20, 200, 100, 50, 5, 10},
		{"overshoot clamps", 10, 100, 10, 500, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, size := Thumb(tt.track, tt.content, tt.container, tt.offset)
			if pos != tt.wantPos || size != tt.wantSize {
				t.Errorf("Thumb = (%d,%d), want (%d,%d)", pos, size, tt.wantPos, tt.wantSize)
			}
		})
	}
}

func TestThumb_StaysOnTrack(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		track := rapid.IntRange(1, 200).Draw(t, "track")
		content := rapid.IntRange(0, 1_000_000).Draw(t, "content")
		container := rapid.IntRange(0, 5000).Draw(t, "container")
		offset := rapid.IntRange(-10, 2_000_000).Draw(t, "offset")

		pos, size := Thumb(track, content, container, offset)
		if size < 1 || pos < 0 || pos+size > track {
			t.Fatalf("thumb (%d,%d) escapes track %d", pos, size, track)
		}
	})
}
