package dataset

import (
	"github.com/google/uuid"

	"github.com/hienpham123/tabletify/internal/grid"
)

// Record is one row of raw data. The id is minted at load time so row
// identity survives sorting and filtering.
type Record struct {
	ID     uuid.UUID
	Fields map[string]string
}

func NewRecord(fields map[string]string) *Record {
	if fields == nil {
		fields = make(map[string]string)
	}
	return &Record{ID: uuid.New(), Fields: fields}
}

// Value returns the record's cell text, empty for absent fields.
func (r *Record) Value(col string) string {
	if r == nil {
		return ""
	}
	return r.Fields[col]
}

// WriteFunc is the host seam every cell mutation routes through; paste,
// delete and the inline editor all end up here.
type WriteFunc func(rec *Record, col, value string, row grid.DataRow)

// Dataset holds the raw records and the column descriptors. It never
// reorders records; derived orderings live in pipeline views.
type Dataset struct {
	cols []grid.Column
	recs []*Record
}

func New(cols []grid.Column, recs []*Record) *Dataset {
	return &Dataset{cols: cols, recs: recs}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.recs)
}

// Columns returns the descriptor slice itself; callers toggling Hidden
// mutate display state in place.
func (d *Dataset) Columns() []grid.Column {
	if d == nil {
		return nil
	}
	return d.cols
}

func (d *Dataset) SetColumns(cols []grid.Column) {
	d.cols = cols
}

// VisibleColumns is the current display order.
func (d *Dataset) VisibleColumns() []grid.Column {
	return grid.Visible(d.Columns())
}

// Record returns the i-th raw record, nil when out of bounds.
func (d *Dataset) Record(i int) *Record {
	if d == nil || i < 0 || i >= len(d.recs) {
		return nil
	}
	return d.recs[i]
}

// Append adds records at the end (load-more) and reports how many.
func (d *Dataset) Append(recs []*Record) int {
	d.recs = append(d.recs, recs...)
	return len(recs)
}

// SetCell writes one raw cell, ignoring out-of-bounds rows.
func (d *Dataset) SetCell(i int, col, value string) {
	rec := d.Record(i)
	if rec == nil {
		return
	}
	if rec.Fields == nil {
		rec.Fields = make(map[string]string)
	}
	rec.Fields[col] = value
}
