package window

// Thumb returns the position and size of a scrollbar thumb on a track of the
// given length. The thumb is proportional to container/content and its
// position to offset within the scrollable range, so the scrollbar reports the
// full, unvirtualized content extent.
//
// When the content fits, the thumb spans the whole track.
func Thumb(track, contentHeight, containerHeight, offset int) (pos, size int) {
	if track <= 0 {
		return 0, 0
	}
	if contentHeight <= 0 || contentHeight <= containerHeight {
		return 0, track
	}
	if containerHeight < 0 {
		containerHeight = 0
	}

	size = track * containerHeight / contentHeight
	if size < 1 {
		size = 1
	}
	if size > track {
		size = track
	}

	scrollable := contentHeight - containerHeight
	trackRange := track - size
	if offset < 0 {
		offset = 0
	}
	if trackRange > 0 {
		pos = offset * trackRange / scrollable
	}
	if pos > trackRange {
		pos = trackRange
	}
	return pos, size
}
