package bindings

import "testing"

func TestLookupResolvesDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key  string
		want ActionID
	}{
		{key: "ctrl+c", want: ActionCopy},
		{key: "ctrl+x", want: ActionCut},
		{key: "ctrl+v", want: ActionPaste},
		{key: "backspace", want: ActionClearCells},
		{key: "delete", want: ActionClearCells},
		{key: "?", want: ActionToggleHelp},
	}
	for _, tc := range cases {
		got, ok := Lookup(tc.key)
		if !ok || got != tc.want {
			t.Fatalf("key %q: expected %q, got %q ok=%v", tc.key, tc.want, got, ok)
		}
	}

	if _, ok := Lookup("ctrl+alt+nope"); ok {
		t.Fatalf("expected unknown chord to miss")
	}
}

func TestEveryActionHasAKey(t *testing.T) {
	t.Parallel()

	for _, id := range KnownActions() {
		if PrimaryKey(id) == "" {
			t.Fatalf("action %q has no default chord", id)
		}
	}
}

func TestNoDuplicateChords(t *testing.T) {
	t.Parallel()

	seen := make(map[string]ActionID)
	for _, d := range definitions {
		for _, key := range d.defaults {
			if other, ok := seen[key]; ok {
				t.Fatalf("chord %q bound to both %q and %q", key, other, d.id)
			}
			seen[key] = d.id
		}
	}
}
