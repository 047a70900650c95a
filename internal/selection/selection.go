package selection

import (
	"sort"

	"github.com/hienpham123/tabletify/internal/grid"
)

// Direction names a focus movement. Step directions move one cell; edge
// directions jump to the boundary of the current bounds.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirRowStart
	DirRowEnd
	DirTop
	DirBottom
	DirFarLeft
	DirFarRight
)

// Engine owns the current cell selection for one page of rows. All row
// indices are page rows; the controller resets the engine on page change so
// references never dangle across pages.
//
// The anchor for every extend operation is the stored range's Start corner.
// Start keeps the corner a gesture anchored at (ranges are stored
// un-normalized), so shift+click, drag and shift+arrow all measure from the
// same place. SetFocus only plants a new anchor when no range exists.
type Engine struct {
	rows int
	cols []grid.Column

	rng     *grid.Range
	cells   map[string]struct{}
	toggled map[string]grid.Pos
	focus   *grid.Pos

	selecting bool
	copied    bool
}

func New() *Engine {
	return &Engine{
		cells:   make(map[string]struct{}),
		toggled: make(map[string]grid.Pos),
	}
}

// SetBounds tells the engine how many rows and which columns the current
// page has. Existing selection and focus are clamped into the new bounds;
// an empty bounds clears everything including focus.
func (e *Engine) SetBounds(rows int, cols []grid.Column) {
	e.rows = rows
	e.cols = cols
	if rows <= 0 || len(cols) == 0 {
		e.rng = nil
		e.cells = make(map[string]struct{})
		e.toggled = make(map[string]grid.Pos)
		e.focus = nil
		e.selecting = false
		e.copied = false
		return
	}
	if e.focus != nil {
		p := e.clampPos(*e.focus)
		e.focus = &p
	}
	if e.rng != nil {
		start := e.clampPos(e.rng.Start)
		end := e.clampPos(e.rng.End)
		e.rng = &grid.Range{Start: start, End: end}
		e.rebuildCells()
	}
	if len(e.toggled) > 0 {
		kept := make(map[string]grid.Pos, len(e.toggled))
		for _, p := range e.toggled {
			if int(p.Row) < rows && grid.ColIndex(cols, p.Col) >= 0 {
				kept[p.Key()] = p
			}
		}
		e.toggled = kept
	}
}

// Start begins a selection gesture at the given cell. With extend set and a
// range already present, the existing anchor stays put and the far corner
// moves to the new cell (shift+click). Otherwise a fresh single-cell range
// is anchored here and a drag gesture begins.
func (e *Engine) Start(row grid.PageRow, col string, extend bool) {
	if e.empty() {
		return
	}
	p := e.clampPos(grid.Pos{Row: row, Col: col})
	e.copied = false
	e.toggled = make(map[string]grid.Pos)
	if extend && e.rng != nil {
		e.rng.End = p
		e.focus = &p
		e.rebuildCells()
		return
	}
	e.rng = &grid.Range{Start: p, End: p}
	e.focus = &p
	e.selecting = true
	e.rebuildCells()
}

// Update moves the far corner of an in-progress drag gesture. No-op when no
// gesture was started.
func (e *Engine) Update(row grid.PageRow, col string) {
	if !e.selecting || e.rng == nil || e.empty() {
		return
	}
	p := e.clampPos(grid.Pos{Row: row, Col: col})
	e.rng.End = p
	e.focus = &p
	e.rebuildCells()
}

// End finishes a drag gesture. Selection contents are unaffected.
func (e *Engine) End() {
	e.selecting = false
}

// Selecting reports whether a drag gesture is in progress.
func (e *Engine) Selecting() bool {
	return e.selecting
}

// Clear empties the selection but keeps focus, matching the spreadsheet
// convention where Escape drops the marching range and leaves the caret.
func (e *Engine) Clear() {
	e.rng = nil
	e.cells = make(map[string]struct{})
	e.toggled = make(map[string]grid.Pos)
	e.selecting = false
	e.copied = false
}

// SetFocus moves the active cell. When nothing is selected it also starts a
// single-cell selection there, so focus and selection begin coupled.
func (e *Engine) SetFocus(row grid.PageRow, col string) {
	if e.empty() {
		return
	}
	p := e.clampPos(grid.Pos{Row: row, Col: col})
	e.focus = &p
	if e.rng == nil && len(e.toggled) == 0 {
		e.rng = &grid.Range{Start: p, End: p}
		e.rebuildCells()
	}
}

// Focus returns the active cell, falling back to the trailing corner of the
// range when focus was never set explicitly.
func (e *Engine) Focus() (grid.Pos, bool) {
	if e.focus != nil {
		return *e.focus, true
	}
	if e.rng != nil {
		return e.rng.End, true
	}
	return grid.Pos{}, false
}

// MoveFocus moves the active cell one step (or to an edge) in the given
// direction, clamped to bounds. With extend set the range is recomputed from
// its anchor to the new cell; otherwise focus and a fresh single-cell
// selection move together. Reports false when there was nothing to move.
func (e *Engine) MoveFocus(dir Direction, extend bool) (grid.Pos, bool) {
	if e.empty() {
		return grid.Pos{}, false
	}
	cur, ok := e.Focus()
	if !ok {
		cur = grid.Pos{Row: 0, Col: e.cols[0].Key}
	}
	cur = e.clampPos(cur)
	next := e.step(cur, dir)

	if extend && e.rng != nil {
		e.rng.End = next
		e.focus = &next
		e.copied = false
		e.rebuildCells()
		return next, true
	}
	e.rng = &grid.Range{Start: next, End: next}
	e.focus = &next
	e.toggled = make(map[string]grid.Pos)
	e.copied = false
	e.rebuildCells()
	return next, true
}

func (e *Engine) step(p grid.Pos, dir Direction) grid.Pos {
	ci := grid.ColIndex(e.cols, p.Col)
	if ci < 0 {
		ci = 0
	}
	row := int(p.Row)
	switch dir {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		ci--
	case DirRight:
		ci++
	case DirRowStart, DirFarLeft:
		ci = 0
	case DirRowEnd, DirFarRight:
		ci = len(e.cols) - 1
	case DirTop:
		row = 0
	case DirBottom:
		row = e.rows - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= e.rows {
		row = e.rows - 1
	}
	if ci < 0 {
		ci = 0
	}
	if ci >= len(e.cols) {
		ci = len(e.cols) - 1
	}
	return grid.Pos{Row: grid.PageRow(row), Col: e.cols[ci].Key}
}

// ToggleCell flips one cell in or out of the selection without a range
// gesture. An existing range is materialized into individual cells first so
// the toggle composes with it.
func (e *Engine) ToggleCell(row grid.PageRow, col string) {
	if e.empty() {
		return
	}
	p := e.clampPos(grid.Pos{Row: row, Col: col})
	if e.rng != nil {
		for _, c := range e.rng.Cells(e.cols) {
			e.toggled[c.Key()] = c
		}
		e.rng = nil
		e.cells = make(map[string]struct{})
	}
	e.copied = false
	key := p.Key()
	if _, ok := e.toggled[key]; ok {
		delete(e.toggled, key)
	} else {
		e.toggled[key] = p
	}
	e.focus = &p
}

// IsSelected is an O(1) membership test against the current selection.
func (e *Engine) IsSelected(row grid.PageRow, col string) bool {
	key := posKey(row, col)
	if e.rng != nil {
		if _, ok := e.cells[key]; ok {
			return true
		}
	}
	_, ok := e.toggled[key]
	return ok
}

// Range returns the current rectangle, un-normalized, when one exists.
func (e *Engine) Range() (grid.Range, bool) {
	if e.rng == nil {
		return grid.Range{}, false
	}
	return *e.rng, true
}

// Cells returns the selected cells. A range is enumerated fresh so the
// order is always row-major regardless of the cached set; toggled cells are
// returned sorted the same way.
func (e *Engine) Cells() []grid.Pos {
	if e.rng != nil {
		return e.rng.Cells(e.cols)
	}
	if len(e.toggled) == 0 {
		return nil
	}
	out := make([]grid.Pos, 0, len(e.toggled))
	for _, p := range e.toggled {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return grid.ColIndex(e.cols, out[i].Col) < grid.ColIndex(e.cols, out[j].Col)
	})
	return out
}

// HasSelection reports whether any cell is selected.
func (e *Engine) HasSelection() bool {
	return e.rng != nil || len(e.toggled) > 0
}

// MarkCopied sets the marching-ants flag after a copy or cut. Any new
// selection gesture clears it.
func (e *Engine) MarkCopied()  { e.copied = true }
func (e *Engine) ClearCopied() { e.copied = false }
func (e *Engine) Copied() bool { return e.copied }

func (e *Engine) empty() bool {
	return e.rows <= 0 || len(e.cols) == 0
}

func (e *Engine) clampPos(p grid.Pos) grid.Pos {
	row := int(p.Row)
	if row < 0 {
		row = 0
	}
	if row >= e.rows {
		row = e.rows - 1
	}
	col := p.Col
	if grid.ColIndex(e.cols, col) < 0 && len(e.cols) > 0 {
		col = e.cols[0].Key
	}
	return grid.Pos{Row: grid.PageRow(row), Col: col}
}

// rebuildCells refreshes the membership cache from the authoritative range.
func (e *Engine) rebuildCells() {
	cells := make(map[string]struct{})
	if e.rng != nil {
		for _, p := range e.rng.Cells(e.cols) {
			cells[p.Key()] = struct{}{}
		}
	}
	e.cells = cells
}

func posKey(row grid.PageRow, col string) string {
	return grid.Pos{Row: row, Col: col}.Key()
}
