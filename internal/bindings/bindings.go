package bindings

import "sort"

type ActionID string

// Action identifiers exposed via KnownActions for docs and help rendering.
var (
	ActionCopy          ActionID = "copy"
	ActionCut           ActionID = "cut"
	ActionPaste         ActionID = "paste"
	ActionClearCells    ActionID = "clear_cells"
	ActionClearSelect   ActionID = "clear_selection"
	ActionSortCycle     ActionID = "sort_cycle"
	ActionGroupCycle    ActionID = "group_cycle"
	ActionFilterPrompt  ActionID = "filter_prompt"
	ActionExprPrompt    ActionID = "expr_prompt"
	ActionGotoRow       ActionID = "goto_row"
	ActionPageNext      ActionID = "page_next"
	ActionPagePrev      ActionID = "page_prev"
	ActionColumnManager ActionID = "column_manager"
	ActionEditCell      ActionID = "edit_cell"
	ActionReloadSource  ActionID = "reload_source"
	ActionToggleHelp    ActionID = "toggle_help"
	ActionQuitApp       ActionID = "quit_app"
)

type definition struct {
	id         ActionID
	repeatable bool
	defaults   []string
}

// definitions is the canonical action table. The first key of each entry
// is the one shown in help and the footer.
var definitions = []definition{
	def(ActionCopy, false, "ctrl+c"),
	def(ActionCut, false, "ctrl+x"),
	def(ActionPaste, false, "ctrl+v"),
	def(ActionClearCells, false, "delete", "backspace"),
	def(ActionClearSelect, false, "esc"),
	def(ActionSortCycle, true, "f"),
	def(ActionGroupCycle, true, "F"),
	def(ActionFilterPrompt, false, "/"),
	def(ActionExprPrompt, false, "e"),
	def(ActionGotoRow, false, "g"),
	def(ActionPageNext, true, "]"),
	def(ActionPagePrev, true, "["),
	def(ActionColumnManager, false, "c"),
	def(ActionEditCell, false, "i", "f2"),
	def(ActionReloadSource, false, "ctrl+r"),
	def(ActionToggleHelp, false, "?"),
	def(ActionQuitApp, false, "ctrl+q", "q"),
}

var definitionLookup = func() map[ActionID]definition {
	lookup := make(map[ActionID]definition, len(definitions))
	for _, d := range definitions {
		lookup[d.id] = d
	}
	return lookup
}()

var keyLookup = func() map[string]ActionID {
	lookup := make(map[string]ActionID)
	for _, d := range definitions {
		for _, key := range d.defaults {
			lookup[key] = d.id
		}
	}
	return lookup
}()

func def(id ActionID, repeatable bool, keys ...string) definition {
	return definition{id: id, repeatable: repeatable, defaults: keys}
}

// Lookup resolves a key chord to its action.
func Lookup(key string) (ActionID, bool) {
	id, ok := keyLookup[key]
	return id, ok
}

// Keys returns the default chords for an action, primary first.
func Keys(id ActionID) []string {
	return definitionLookup[id].defaults
}

// PrimaryKey is the chord shown in help for an action.
func PrimaryKey(id ActionID) string {
	keys := definitionLookup[id].defaults
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// Repeatable reports whether holding the chord should repeat the action.
func Repeatable(id ActionID) bool {
	return definitionLookup[id].repeatable
}

// KnownActions lists every action id, sorted for stable docs output.
func KnownActions() []ActionID {
	ids := make([]ActionID, 0, len(definitions))
	for _, d := range definitions {
		ids = append(ids, d.id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
