package scroll

// Align returns a y-offset that keeps the focused row away from viewport
// edges. It behaves like a lightweight scrolloff: nudge just enough to keep
// a small buffer between the focus and the edge.
func Align(sel, off, h, total int) int {
	sel, h, maxOff, ok := normalize(sel, h, total)
	if !ok {
		return 0
	}
	off = clamp(off, 0, maxOff)

	if sel >= total-1 {
		return maxOff
	}

	buf := h / 4
	if buf < 1 {
		buf = 1
	}
	top := off + buf
	bot := off + h - 1 - buf
	if sel < top {
		return clamp(sel-buf, 0, maxOff)
	}
	if sel > bot {
		return clamp(off+sel-bot, 0, maxOff)
	}
	return off
}

// Center returns the y-offset that puts the row mid-viewport, for jumps
// (goto-row, page flips) where minimal nudging would leave the target at an
// edge with no context around it.
func Center(sel, h, total int) int {
	sel, h, maxOff, ok := normalize(sel, h, total)
	if !ok {
		return 0
	}
	return clamp(sel-h/2, 0, maxOff)
}

func normalize(sel, h, total int) (sel2, h2, maxOff int, ok bool) {
	if h <= 0 || total <= 0 {
		return 0, 0, 0, false
	}
	sel = clamp(sel, 0, total-1)
	if h > total {
		h = total
	}
	return sel, h, total - h, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
