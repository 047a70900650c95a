package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/duration"
	"github.com/hienpham123/tabletify/internal/grid"
)

// sortRows stable-sorts the index slice by the sort column. Numeric
// columns compare as numbers; otherwise both values are tried as numbers,
// then as durations, then case-folded strings, so "2" sorts before "10"
// and "90m" before "2h" without per-column configuration.
func sortRows(ds *dataset.Dataset, idx []int, key string, dir SortDir) {
	if key == "" || dir == SortNone || len(idx) < 2 {
		return
	}
	numeric := false
	if ci := grid.ColIndex(ds.Columns(), key); ci >= 0 {
		numeric = ds.Columns()[ci].Numeric
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a := ds.Record(idx[i]).Value(key)
		b := ds.Record(idx[j]).Value(key)
		c := compareCells(a, b, numeric)
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func compareCells(a, b string, numeric bool) int {
	if numeric {
		if c, ok := compareFloats(a, b); ok {
			return c
		}
	}
	if c, ok := compareFloats(a, b); ok {
		return c
	}
	if c, ok := compareDurations(a, b); ok {
		return c
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareFloats(a, b string) (int, bool) {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA != nil || errB != nil {
		return 0, false
	}
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	default:
		return 0, true
	}
}

func compareDurations(a, b string) (int, bool) {
	da, okA := duration.Parse(a)
	db, okB := duration.Parse(b)
	if !okA || !okB {
		return 0, false
	}
	switch {
	case da < db:
		return -1, true
	case da > db:
		return 1, true
	default:
		return 0, true
	}
}
