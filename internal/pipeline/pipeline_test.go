package pipeline

import (
	"testing"

	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/grid"
)

func testDataset() *dataset.Dataset {
	cols := []grid.Column{
		{Key: "name"},
		{Key: "dept"},
		{Key: "salary", Numeric: true},
		{Key: "tenure"},
	}
	rows := []map[string]string{
		{"name": "Ana", "dept": "Eng", "salary": "90000", "tenure": "2h"},
		{"name": "Bo", "dept": "Sales", "salary": "70000", "tenure": "90m"},
		{"name": "Cem", "dept": "Eng", "salary": "110000", "tenure": "30m"},
		{"name": "dara", "dept": "Ops", "salary": "9000", "tenure": "1d"},
		{"name": "Eli", "dept": "Sales", "salary": "70000", "tenure": "45m"},
	}
	recs := make([]*dataset.Record, 0, len(rows))
	for _, fields := range rows {
		recs = append(recs, dataset.NewRecord(fields))
	}
	return dataset.New(cols, recs)
}

func names(ds *dataset.Dataset, v *View) []string {
	out := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		out = append(out, v.CellString(grid.DataRow(i), "name"))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIdentityPipeline(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if v.Len() != 5 || v.PageLen() != 5 {
		t.Fatalf("expected all rows on one page, got len=%d page=%d", v.Len(), v.PageLen())
	}
}

func TestSubstringFilterIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{Filters: map[string]string{"dept": "eng"}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := names(ds, v); !equalStrings(got, []string{"Ana", "Cem"}) {
		t.Fatalf("expected Eng rows, got %v", got)
	}
}

func TestExpressionFilter(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{Expr: `dept == "Sales"`})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := names(ds, v); !equalStrings(got, []string{"Bo", "Eli"}) {
		t.Fatalf("expected Sales rows, got %v", got)
	}
}

func TestExpressionCompileErrorSurfaces(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	if _, err := Apply(ds, Params{Expr: `dept ==`}); err == nil {
		t.Fatalf("expected compile error for bad expression")
	}
}

func TestExpressionNonBoolExcludesRows(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{Expr: `name`})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if v.Len() != 0 {
		t.Fatalf("expected non-bool expression to exclude every row, got %d", v.Len())
	}
}

func TestNumericSortOrdersByValue(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{SortKey: "salary", SortDir: SortAsc})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	// 9000 < 70000 < 90000 < 110000; lexical order would put 110000 first.
	if got := names(ds, v); !equalStrings(got, []string{"dara", "Bo", "Eli", "Ana", "Cem"}) {
		t.Fatalf("unexpected numeric order: %v", got)
	}
}

func TestDurationSort(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{SortKey: "tenure", SortDir: SortAsc})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := names(ds, v); !equalStrings(got, []string{"Cem", "Eli", "Bo", "Ana", "dara"}) {
		t.Fatalf("unexpected duration order: %v", got)
	}
}

func TestStringSortFoldsCase(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{SortKey: "name", SortDir: SortDesc})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := names(ds, v); !equalStrings(got, []string{"Eli", "dara", "Cem", "Bo", "Ana"}) {
		t.Fatalf("unexpected folded order: %v", got)
	}
}

func TestGroupOrdersRunsAndKeepsSortInside(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{GroupKey: "dept", SortKey: "salary", SortDir: SortDesc})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := names(ds, v); !equalStrings(got, []string{"Cem", "Ana", "dara", "Bo", "Eli"}) {
		t.Fatalf("unexpected grouped order: %v", got)
	}

	b := v.Boundaries()
	if len(b) != 3 {
		t.Fatalf("expected 3 group boundaries, got %v", b)
	}
	if b[0] != 0 || b[1] != 2 || b[2] != 3 {
		t.Fatalf("expected boundaries at first row of each run, got %v", b)
	}
}

func TestPagination(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		total int
		size  int
		num   int
		want  Page
	}{
		{name: "size off", total: 10, size: 0, num: 3, want: Page{Offset: 0, Len: 10, Num: 0, Count: 1}},
		{name: "first page", total: 10, size: 4, num: 0, want: Page{Offset: 0, Len: 4, Num: 0, Count: 3}},
		{name: "short last page", total: 10, size: 4, num: 2, want: Page{Offset: 8, Len: 2, Num: 2, Count: 3}},
		{name: "page clamped", total: 10, size: 4, num: 9, want: Page{Offset: 8, Len: 2, Num: 2, Count: 3}},
		{name: "empty data", total: 0, size: 4, num: 0, want: Page{Offset: 0, Len: 0, Num: 0, Count: 1}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := paginate(tc.total, tc.size, tc.num); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestViewWriterResolvesRecords(t *testing.T) {
	t.Parallel()

	ds := testDataset()
	v, err := Apply(ds, Params{SortKey: "salary", SortDir: SortAsc})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	var gotRec *dataset.Record
	write := v.Writer(func(rec *dataset.Record, col, value string, row grid.DataRow) {
		gotRec = rec
		rec.Fields[col] = value
	})

	write(0, "name", "updated")
	if gotRec == nil || gotRec.Value("name") != "updated" {
		t.Fatalf("expected write through the seam to hit the record")
	}
	// Sorted row 0 is dara (salary 9000); the raw record must be the one
	// changed, not raw index 0.
	if ds.Record(3).Value("name") != "updated" {
		t.Fatalf("expected sorted view row to resolve to raw record 3")
	}
	if ds.Record(0).Value("name") != "Ana" {
		t.Fatalf("expected raw record 0 untouched, got %q", ds.Record(0).Value("name"))
	}

	// Out-of-range writes drop silently.
	write(99, "name", "nope")
}
