package clipboard

import (
	"reflect"
	"testing"

	"github.com/MakeNowJust/heredoc"
)

func TestParseTabular(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "plain grid",
			text: "1\t2\n3\t4",
			want: [][]string{{"1", "2"}, {"3", "4"}},
		},
		{
			name: "quoted comma",
			text: "\"a,b\"\tc",
			want: [][]string{{"a,b", "c"}},
		},
		{
			name: "escaped quote",
			text: "\"say \"\"hi\"\"\"\tx",
			want: [][]string{{`say "hi"`, "x"}},
		},
		{
			name: "quoted newline spans rows",
			text: "\"line1\nline2\"\tb",
			want: [][]string{{"line1\nline2", "b"}},
		},
		{
			name: "crlf endings",
			text: "a\tb\r\nc\td",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "trailing newline dropped",
			text: "a\tb\n",
			want: [][]string{{"a", "b"}},
		},
		{
			name: "ragged rows kept ragged",
			text: "a\tb\tc\nd",
			want: [][]string{{"a", "b", "c"}, {"d"}},
		},
		{
			name: "empty fields survive",
			text: "a\t\tb",
			want: [][]string{{"a", "", "b"}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	if got := Parse(""); got != nil {
		t.Fatalf("expected nil for empty text, got %q", got)
	}
}

func TestEncodeQuotesSpecialFields(t *testing.T) {
	t.Parallel()

	got := Encode([][]string{
		{"plain", "a,b"},
		{"say \"hi\"", "tab\there"},
	})
	want := "plain\t\"a,b\"\n\"say \"\"hi\"\"\"\t\"tab\there\""
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	t.Parallel()

	block := [][]string{
		{"a", "with,comma", "with\ttab"},
		{"with\nnewline", `with "quotes"`, ""},
	}
	got := Parse(Encode(block))
	if !reflect.DeepEqual(got, block) {
		t.Fatalf("round trip mismatch: %q vs %q", got, block)
	}
}

func TestParseSpreadsheetPasteFixture(t *testing.T) {
	t.Parallel()

	// The shape external spreadsheet apps put on the clipboard.
	text := heredoc.Doc(`
		Name	Dept	Salary
		"Reyes, Ana"	Engineering	92000
		"Lee ""Mac"" Min"	Sales	71000
	`)
	got := Parse(text)
	want := [][]string{
		{"Name", "Dept", "Salary"},
		{"Reyes, Ana", "Engineering", "92000"},
		{`Lee "Mac" Min`, "Sales", "71000"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
