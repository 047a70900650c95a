package util

import "testing"

func TestSanitizeCell(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "tab and newline flatten", in: "a\tb\nc", want: "a b c"},
		{name: "crlf", in: "a\r\nb", want: "a  b"},
		{name: "control dropped", in: "a\x00b\x1bc", want: "abc"},
		{name: "unicode kept", in: "naïve 日本", want: "naïve 日本"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeCell(tc.in); got != tc.want {
				t.Fatalf("SanitizeCell(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
