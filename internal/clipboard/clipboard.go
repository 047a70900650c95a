package clipboard

import (
	"sort"

	"github.com/hienpham123/tabletify/internal/grid"
)

// Reader is the engine's view of cell data. Implemented by pipeline views;
// the engine never touches records directly.
type Reader interface {
	CellString(row grid.DataRow, col string) string
	RowLen() int
}

// WriteFunc is the single seam every paste and delete routes through. The
// host applies validation and its own bookkeeping behind it.
type WriteFunc func(row grid.DataRow, col string, value string)

// Engine owns the internal tabular buffer and cut bookkeeping. All cell
// positions it handles are dataset rows; page-space conversion happens in
// the controller before calls arrive here.
type Engine struct {
	port   Port
	buf    [][]string
	isCut  bool
	cutSrc []grid.DataPos
}

func NewEngine(port Port) *Engine {
	return &Engine{port: port}
}

// Copy captures the given cells into the internal buffer, rows ascending
// and columns in display order, and returns the encoded interchange text.
// The host clipboard write is best effort: its error is returned for status
// reporting but the internal copy has already succeeded.
func (e *Engine) Copy(cells []grid.DataPos, src Reader, cols []grid.Column) (string, error) {
	buf := buildBlock(cells, src, cols)
	if len(buf) == 0 {
		return "", nil
	}
	e.buf = buf
	e.isCut = false
	e.cutSrc = nil

	text := Encode(buf)
	var portErr error
	if e.port != nil {
		portErr = e.port.WriteText(text)
	}
	return text, portErr
}

// Cut copies and remembers the source cells. The sources keep their data
// until a paste actually consumes the cut; a cut that is never pasted
// leaves the dataset untouched.
func (e *Engine) Cut(cells []grid.DataPos, src Reader, cols []grid.Column) (string, error) {
	text, err := e.Copy(cells, src, cols)
	if len(e.buf) > 0 {
		e.isCut = true
		e.cutSrc = append([]grid.DataPos(nil), cells...)
	}
	return text, err
}

// PasteInternal applies the internal buffer at the target cells. A
// single-cell buffer fans out into every target; a block anchors its
// top-left at the first target. Destinations outside the dataset or the
// column list are skipped, never an error. When the buffer came from a cut
// the sources are blanked after the destination writes, completing the
// move. Returns the number of cells written.
func (e *Engine) PasteInternal(targets []grid.DataPos, src Reader, cols []grid.Column, write WriteFunc) int {
	if !e.CanPaste() || len(targets) == 0 || write == nil {
		return 0
	}
	n := applyBlock(e.buf, targets, cols, src.RowLen(), write)
	if n > 0 && e.isCut {
		for _, p := range e.cutSrc {
			if int(p.Row) >= 0 && int(p.Row) < src.RowLen() && grid.ColIndex(cols, p.Col) >= 0 {
				write(p.Row, p.Col, "")
			}
		}
		e.isCut = false
		e.cutSrc = nil
	}
	return n
}

// PasteText applies host-clipboard text with the same anchor and fan-out
// rules. The host clipboard carries no cut notion, so no sources are ever
// blanked on this path.
func (e *Engine) PasteText(text string, targets []grid.DataPos, cols []grid.Column, rowLen int, write WriteFunc) int {
	if len(targets) == 0 || write == nil {
		return 0
	}
	return applyBlock(Parse(text), targets, cols, rowLen, write)
}

// CanPaste reports whether a non-empty internal buffer exists.
func (e *Engine) CanPaste() bool {
	return len(e.buf) > 0
}

// IsCut reports whether the active buffer holds an unconsumed cut.
func (e *Engine) IsCut() bool {
	return e.isCut
}

// Clear drops the buffer and any pending cut.
func (e *Engine) Clear() {
	e.buf = nil
	e.isCut = false
	e.cutSrc = nil
}

// buildBlock groups positions by row and reads them in display-column
// order, producing the rectangular row-major buffer that defines the
// serialization order.
func buildBlock(cells []grid.DataPos, src Reader, cols []grid.Column) [][]string {
	if len(cells) == 0 || src == nil {
		return nil
	}
	byRow := make(map[grid.DataRow][]grid.DataPos)
	for _, p := range cells {
		byRow[p.Row] = append(byRow[p.Row], p)
	}
	rows := make([]grid.DataRow, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i] < rows[j] })

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		ps := byRow[row]
		sort.Slice(ps, func(i, j int) bool {
			return grid.ColIndex(cols, ps[i].Col) < grid.ColIndex(cols, ps[j].Col)
		})
		line := make([]string, 0, len(ps))
		for _, p := range ps {
			line = append(line, src.CellString(p.Row, p.Col))
		}
		out = append(out, line)
	}
	return out
}

// applyBlock writes buf into the dataset. Ragged buffer rows simply write
// fewer cells; nothing is written past the dataset or column bounds.
func applyBlock(buf [][]string, targets []grid.DataPos, cols []grid.Column, rowLen int, write WriteFunc) int {
	if len(buf) == 0 || len(targets) == 0 {
		return 0
	}

	if len(buf) == 1 && len(buf[0]) == 1 {
		value := buf[0][0]
		n := 0
		for _, t := range targets {
			if int(t.Row) < 0 || int(t.Row) >= rowLen || grid.ColIndex(cols, t.Col) < 0 {
				continue
			}
			write(t.Row, t.Col, value)
			n++
		}
		return n
	}

	anchor := targets[0]
	startCol := grid.ColIndex(cols, anchor.Col)
	if startCol < 0 {
		startCol = 0
	}
	n := 0
	for r, line := range buf {
		destRow := anchor.Row + grid.DataRow(r)
		if int(destRow) < 0 || int(destRow) >= rowLen {
			continue
		}
		for c, value := range line {
			ci := startCol + c
			if ci >= len(cols) {
				break
			}
			write(destRow, cols[ci].Key, value)
			n++
		}
	}
	return n
}
