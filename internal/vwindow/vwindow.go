package vwindow

// Range is the half-open row interval [Start, End) to materialize, plus the
// spacer geometry the host renders around it: OffsetY is the pixel height of
// the leading spacer and TotalHeight the full scrollable height, so native
// scrollbar geometry survives without materializing off-screen rows.
type Range struct {
	Start       int
	End         int
	OffsetY     int
	TotalHeight int
}

func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether the row is inside the materialized interval.
func (r Range) Contains(row int) bool {
	return row >= r.Start && row < r.End
}

type span struct {
	start, end int
}

// Engine computes a stable, flicker-free window over a long row sequence.
// Each recomputation merges the minimal "ideal" range into the remembered
// stable range, so the window only ever grows while the viewport stays
// inside it; it is rebuilt only when the viewport jumps clear of it or the
// merged size would exceed MaxRows. Compute is idempotent and safe to call
// on every scroll event.
type Engine struct {
	overscan int
	maxRows  int

	stable     *span
	lastScroll int
	rowCount   int
}

const (
	defaultOverscan = 5
	defaultMaxRows  = 200
)

func New(overscan, maxRows int) *Engine {
	if overscan < 0 {
		overscan = defaultOverscan
	}
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}
	return &Engine{overscan: overscan, maxRows: maxRows}
}

// Compute returns the window for the given scroll state. rowHeight is in
// the same unit as scrollTop and viewportH; a terminal host passes 1 so the
// unit is lines.
func (e *Engine) Compute(scrollTop, viewportH, rowHeight, rowCount int) Range {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	if rowCount <= 0 {
		e.stable = nil
		e.rowCount = 0
		e.lastScroll = scrollTop
		return Range{}
	}
	// Fewer rows than last time means removal or wholesale replacement:
	// the remembered range would point at rows that no longer exist.
	if rowCount < e.rowCount {
		e.stable = nil
	}
	e.rowCount = rowCount

	first := scrollTop / rowHeight
	visible := (viewportH + rowHeight - 1) / rowHeight
	if visible < 1 {
		visible = 1
	}
	ideal := span{
		start: clamp(first-e.overscan, 0, rowCount),
		end:   clamp(first+visible+e.overscan, 0, rowCount),
	}
	if ideal.start > ideal.end {
		ideal.start = ideal.end
	}

	down := scrollTop >= e.lastScroll
	e.lastScroll = scrollTop

	switch {
	case e.stable == nil:
		e.stable = &span{start: ideal.start, end: ideal.end}
	case ideal.end <= e.stable.start || ideal.start >= e.stable.end:
		// Viewport jumped entirely outside the stable range.
		e.stable = &span{start: ideal.start, end: ideal.end}
	default:
		merged := span{
			start: min(e.stable.start, ideal.start),
			end:   max(e.stable.end, ideal.end),
		}
		if merged.end-merged.start <= e.maxRows {
			e.stable = &merged
		} else {
			e.stable = trim(ideal, e.maxRows, down, rowCount)
		}
	}

	start := clamp(e.stable.start, 0, rowCount)
	end := clamp(e.stable.end, start, rowCount)
	return Range{
		Start:       start,
		End:         end,
		OffsetY:     start * rowHeight,
		TotalHeight: rowCount * rowHeight,
	}
}

// trim rebuilds a capped range around the ideal one, spending the spare
// capacity on the side the user is scrolling toward.
func trim(ideal span, cap int, down bool, rowCount int) *span {
	size := ideal.end - ideal.start
	if cap < size {
		s := ideal
		return &s
	}
	spare := cap - size
	above := spare / 4
	if !down {
		above = spare - spare/4
	}
	start := clamp(ideal.start-above, 0, rowCount)
	end := clamp(start+cap, ideal.end, rowCount)
	start = clamp(end-cap, 0, ideal.start)
	return &span{start: start, end: end}
}

// Append tells the engine that n rows were added at the end of the
// sequence (infinite-scroll load more). The stable end grows by exactly n
// plus overscan instead of being recomputed, preserving the user's scroll
// position across the load.
func (e *Engine) Append(n int) {
	if n <= 0 {
		return
	}
	e.rowCount += n
	if e.stable != nil {
		e.stable.end = clamp(e.stable.end+n+e.overscan, 0, e.rowCount)
	}
}

// Reset discards the stable range. Call when rows were removed or the
// dataset was replaced.
func (e *Engine) Reset() {
	e.stable = nil
	e.rowCount = 0
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

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
