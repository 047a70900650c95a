package grid

import "strconv"

// Row index spaces. Every engine speaks exactly one of them; the ui layer
// owns the conversions. Keeping them as distinct types makes a missed
// conversion a compile error instead of an off-by-a-page bug.
type (
	// DataRow indexes the filtered and sorted row sequence, before pagination.
	DataRow int
	// PageRow indexes the current page slice.
	PageRow int
	// ViewRow indexes the materialized window slice.
	ViewRow int
)

// Pos is a cell position in page space.
type Pos struct {
	Row PageRow
	Col string
}

// DataPos is a cell position in dataset space. Clipboard operations work
// exclusively in this space.
type DataPos struct {
	Row DataRow
	Col string
}

func (p Pos) Key() string     { return posKey(int(p.Row), p.Col) }
func (p DataPos) Key() string { return posKey(int(p.Row), p.Col) }

func posKey(row int, col string) string {
	return strconv.Itoa(row) + "-" + col
}

// Column describes one grid column. Slice order is display order; hidden
// columns keep their place in the slice but drop out of Visible.
type Column struct {
	Key     string
	Title   string
	Width   int
	Hidden  bool
	Numeric bool
}

// ColIndex returns the order index of key in cols, or -1 when absent.
func ColIndex(cols []Column, key string) int {
	for i, c := range cols {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// Visible filters cols down to the displayed ones, preserving order.
func Visible(cols []Column) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// Range is a rectangle of cells named by two corners. Storage is not
// normalized: Start is the corner the gesture anchored at and End the
// moving corner, so extend operations can keep measuring from Start.
type Range struct {
	Start Pos
	End   Pos
}

// Normalize orders the rectangle spanned by a and b. The result's Start
// carries the smaller row and the leftmost column, End the larger row and
// the rightmost column. Column order is resolved by linear lookup in cols;
// unknown keys clamp to the list bounds instead of failing, because stale
// references must degrade, never crash.
func Normalize(a, b Pos, cols []Column) Range {
	top, bottom := a.Row, b.Row
	if bottom < top {
		top, bottom = bottom, top
	}
	left := clampIndex(ColIndex(cols, a.Col), len(cols))
	right := clampIndex(ColIndex(cols, b.Col), len(cols))
	if right < left {
		left, right = right, left
	}
	start := Pos{Row: top, Col: a.Col}
	end := Pos{Row: bottom, Col: b.Col}
	if len(cols) > 0 {
		start.Col = cols[left].Key
		end.Col = cols[right].Key
	}
	return Range{Start: start, End: end}
}

// Cells enumerates every cell of the rectangle in row-major,
// column-ascending order. This order defines clipboard serialization and
// must stay deterministic.
func (r Range) Cells(cols []Column) []Pos {
	if len(cols) == 0 {
		return nil
	}
	n := Normalize(r.Start, r.End, cols)
	left := clampIndex(ColIndex(cols, n.Start.Col), len(cols))
	right := clampIndex(ColIndex(cols, n.End.Col), len(cols))
	out := make([]Pos, 0, int(n.End.Row-n.Start.Row+1)*(right-left+1))
	for row := n.Start.Row; row <= n.End.Row; row++ {
		for c := left; c <= right; c++ {
			out = append(out, Pos{Row: row, Col: cols[c].Key})
		}
	}
	return out
}

// Contains reports whether the cell lies inside the rectangle.
func (r Range) Contains(row PageRow, col string, cols []Column) bool {
	n := Normalize(r.Start, r.End, cols)
	if row < n.Start.Row || row > n.End.Row {
		return false
	}
	idx := ColIndex(cols, col)
	if idx < 0 {
		return false
	}
	left := clampIndex(ColIndex(cols, n.Start.Col), len(cols))
	right := clampIndex(ColIndex(cols, n.End.Col), len(cols))
	return idx >= left && idx <= right
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
