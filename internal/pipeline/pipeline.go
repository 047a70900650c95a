package pipeline

import (
	"github.com/hienpham123/tabletify/internal/clipboard"
	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/grid"
)

type SortDir int

const (
	SortNone SortDir = iota
	SortAsc
	SortDesc
)

// Cycle advances none -> asc -> desc -> none.
func (d SortDir) Cycle() SortDir {
	switch d {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// Params describes one derivation of the raw records. The zero value is
// the identity pipeline.
type Params struct {
	Filters  map[string]string
	Expr     string
	SortKey  string
	SortDir  SortDir
	GroupKey string
	PageSize int
	Page     int
}

// View is the ordered row sequence the grid indexes into: dataset record
// indices after filter, group and sort, plus the active page slice. It is
// immutable once built; every Params change builds a fresh one.
type View struct {
	ds       *dataset.Dataset
	idx      []int
	page     Page
	groupKey string
}

// Apply derives a view from the raw records. A bad filter expression is
// the only error; everything else degrades to inclusion or identity order.
func Apply(ds *dataset.Dataset, params Params) (*View, error) {
	idx, err := filterRows(ds, params.Filters, params.Expr)
	if err != nil {
		return nil, err
	}
	sortRows(ds, idx, params.SortKey, params.SortDir)
	groupRows(ds, idx, params.GroupKey)
	page := paginate(len(idx), params.PageSize, params.Page)
	return &View{ds: ds, idx: idx, page: page, groupKey: params.GroupKey}, nil
}

// Len is the full filtered+sorted row count, before pagination.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.idx)
}

func (v *View) Page() Page {
	if v == nil {
		return Page{}
	}
	return v.page
}

// PageLen is the number of rows on the current page.
func (v *View) PageLen() int {
	return v.Page().Len
}

// DataIndex maps a dataset-space row to the raw record index, -1 when out
// of bounds.
func (v *View) DataIndex(row grid.DataRow) int {
	if v == nil || int(row) < 0 || int(row) >= len(v.idx) {
		return -1
	}
	return v.idx[row]
}

// RecordAt resolves a dataset-space row to its record.
func (v *View) RecordAt(row grid.DataRow) *dataset.Record {
	i := v.DataIndex(row)
	if i < 0 {
		return nil
	}
	return v.ds.Record(i)
}

// CellString implements clipboard.Reader. Stale rows read as empty.
func (v *View) CellString(row grid.DataRow, col string) string {
	return v.RecordAt(row).Value(col)
}

// RowLen implements clipboard.Reader.
func (v *View) RowLen() int { return v.Len() }

// Writer adapts the dataset write seam to the clipboard engine, resolving
// view rows to records and dropping writes to rows that no longer resolve.
func (v *View) Writer(write dataset.WriteFunc) clipboard.WriteFunc {
	return func(row grid.DataRow, col string, value string) {
		rec := v.RecordAt(row)
		if rec == nil || write == nil {
			return
		}
		write(rec, col, value, row)
	}
}
