package source

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/errdef"
	"github.com/hienpham123/tabletify/internal/grid"
)

const (
	minColWidth    = 4
	maxColWidth    = 32
	widthSampleCap = 200
)

// LoadCSV reads a CSV file whose first line carries the column headers.
// Column widths are sized from sampled content and numeric columns are
// sniffed so sorting compares values instead of text.
func LoadCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeSource, err, "open csv %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	lines, err := r.ReadAll()
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeSource, err, "parse csv %s", path)
	}
	if len(lines) == 0 {
		return nil, errdef.New(errdef.CodeSource, "csv %s has no header line", path)
	}

	headers := lines[0]
	recs := make([]*dataset.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(line) {
				fields[h] = line[i]
			}
		}
		recs = append(recs, dataset.NewRecord(fields))
	}

	cols := buildColumns(headers, recs)
	return dataset.New(cols, recs), nil
}

func buildColumns(headers []string, recs []*dataset.Record) []grid.Column {
	cols := make([]grid.Column, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, grid.Column{
			Key:     h,
			Title:   strings.TrimSpace(h),
			Width:   sampleWidth(h, recs),
			Numeric: sniffNumeric(h, recs),
		})
	}
	return cols
}

func sampleWidth(col string, recs []*dataset.Record) int {
	w := runewidth.StringWidth(strings.TrimSpace(col))
	for i, rec := range recs {
		if i >= widthSampleCap {
			break
		}
		if cw := runewidth.StringWidth(rec.Value(col)); cw > w {
			w = cw
		}
	}
	if w < minColWidth {
		w = minColWidth
	}
	if w > maxColWidth {
		w = maxColWidth
	}
	return w
}

// sniffNumeric reports whether every non-empty value in the column parses
// as a number. Empty columns stay textual.
func sniffNumeric(col string, recs []*dataset.Record) bool {
	seen := false
	for _, rec := range recs {
		v := strings.TrimSpace(rec.Value(col))
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}
