package pipeline

import (
	"sort"
	"strings"

	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/grid"
)

// groupRows is an ordering layer, not a tree: it stable-sorts by the group
// column so runs of equal group values end up adjacent, preserving the sort
// order inside each run. No synthetic rows are inserted, which keeps row
// indices clean for selection and clipboard math.
func groupRows(ds *dataset.Dataset, idx []int, key string) {
	if key == "" || len(idx) < 2 {
		return
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a := strings.ToLower(ds.Record(idx[i]).Value(key))
		b := strings.ToLower(ds.Record(idx[j]).Value(key))
		return a < b
	})
}

// Boundaries returns the dataset-space rows starting a new group run. Row
// 0 always starts one when grouping is active; the renderer draws a
// separator above each.
func (v *View) Boundaries() []grid.DataRow {
	if v == nil || v.groupKey == "" || len(v.idx) == 0 {
		return nil
	}
	var out []grid.DataRow
	prev := ""
	for i := range v.idx {
		val := v.ds.Record(v.idx[i]).Value(v.groupKey)
		if i == 0 || !strings.EqualFold(val, prev) {
			out = append(out, grid.DataRow(i))
		}
		prev = val
	}
	return out
}

// GroupValue reads the group column for a dataset-space row, empty when
// grouping is off.
func (v *View) GroupValue(row grid.DataRow) string {
	if v == nil || v.groupKey == "" {
		return ""
	}
	return v.CellString(row, v.groupKey)
}
