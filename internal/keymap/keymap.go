// Package keymap maps key chords to editor actions for the demo application.
//
// Keymaps are stored as JSON: {"bindings": {"ctrl+d": "select-word", ...}}.
// Unknown actions in a keymap file are ignored; chords not present in the
// file keep their default binding.
package keymap

import (
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Action identifies an editor command.
type Action string

// Actions the demo application understands.
const (
	ActionQuit Action = "quit"

	ActionMoveUp    Action = "move-up"
	ActionMoveDown  Action = "move-down"
	ActionMoveLeft  Action = "move-left"
	ActionMoveRight Action = "move-right"
	ActionLineStart Action = "line-start"
	ActionLineEnd   Action = "line-end"
	ActionPageUp    Action = "page-up"
	ActionPageDown  Action = "page-down"
	ActionDocStart  Action = "doc-start"
	ActionDocEnd    Action = "doc-end"

	ActionSelectUp    Action = "select-up"
	ActionSelectDown  Action = "select-down"
	ActionSelectLeft  Action = "select-left"
	ActionSelectRight Action = "select-right"

	ActionAddCursorAbove Action = "add-cursor-above"
	ActionAddCursorBelow Action = "add-cursor-below"
	ActionClearCursors   Action = "clear-cursors"

	ActionSelectWord  Action = "select-word"
	ActionSelectLine  Action = "select-line"
	ActionSelectAll   Action = "select-all"
	ActionExpandLines Action = "expand-lines"
	ActionShrink      Action = "shrink-selection"

	ActionDeleteBack Action = "delete-back"
)

// knownActions is the set of actions a keymap file may bind.
var knownActions = map[Action]bool{
	ActionQuit:           true,
	ActionMoveUp:         true,
	ActionMoveDown:       true,
	ActionMoveLeft:       true,
	ActionMoveRight:      true,
	ActionLineStart:      true,
	ActionLineEnd:        true,
	ActionPageUp:         true,
	ActionPageDown:       true,
	ActionDocStart:       true,
	ActionDocEnd:         true,
	ActionSelectUp:       true,
	ActionSelectDown:     true,
	ActionSelectLeft:     true,
	ActionSelectRight:    true,
	ActionAddCursorAbove: true,
	ActionAddCursorBelow: true,
	ActionClearCursors:   true,
	ActionSelectWord:     true,
	ActionSelectLine:     true,
	ActionSelectAll:      true,
	ActionExpandLines:    true,
	ActionShrink:         true,
	ActionDeleteBack:     true,
}

// Keymap maps key chords (e.g. "ctrl+d", "shift+up") to actions.
type Keymap struct {
	bindings map[string]Action
}

// Default returns the built-in keymap.
func Default() *Keymap {
	return &Keymap{bindings: map[string]Action{
		"ctrl+q": ActionQuit,

		"up":    ActionMoveUp,
		"down":  ActionMoveDown,
		"left":  ActionMoveLeft,
		"right": ActionMoveRight,
		"home":  ActionLineStart,
		"end":   ActionLineEnd,
		"pgup":  ActionPageUp,
		"pgdn":  ActionPageDown,

		"ctrl+home": ActionDocStart,
		"ctrl+end":  ActionDocEnd,

		"shift+up":    ActionSelectUp,
		"shift+down":  ActionSelectDown,
		"shift+left":  ActionSelectLeft,
		"shift+right": ActionSelectRight,

		"alt+up":   ActionAddCursorAbove,
		"alt+down": ActionAddCursorBelow,
		"esc":      ActionClearCursors,

		"ctrl+d": ActionSelectWord,
		"ctrl+l": ActionSelectLine,
		"ctrl+a": ActionSelectAll,
		"ctrl+e": ActionExpandLines,
		"ctrl+u": ActionShrink,

		"backspace": ActionDeleteBack,
	}}
}

// Load reads a keymap file, overlaying its bindings on the defaults.
// A missing file yields the defaults.
func Load(path string) (*Keymap, error) {
	km := Default()
	if path == "" {
		return km, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return km, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("keymap %s: invalid JSON", path)
	}

	gjson.GetBytes(data, "bindings").ForEach(func(chord, action gjson.Result) bool {
		a := Action(action.String())
		if knownActions[a] {
			km.bindings[chord.String()] = a
		}
		return true
	})
	return km, nil
}

// Lookup returns the action bound to a chord.
func (k *Keymap) Lookup(chord string) (Action, bool) {
	a, ok := k.bindings[chord]
	return a, ok
}

// Bindings returns a copy of the chord-to-action table.
func (k *Keymap) Bindings() map[string]Action {
	out := make(map[string]Action, len(k.bindings))
	for chord, a := range k.bindings {
		out[chord] = a
	}
	return out
}

// DefaultJSON renders the default keymap as a JSON document with chords in
// sorted order.
func DefaultJSON() (string, error) {
	km := Default()

	chords := make([]string, 0, len(km.bindings))
	for chord := range km.bindings {
		chords = append(chords, chord)
	}
	sort.Strings(chords)

	out := "{}"
	var err error
	for _, chord := range chords {
		out, err = sjson.Set(out, "bindings."+escapePath(chord), string(km.bindings[chord]))
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// WriteDefault writes the default keymap to the given path.
func WriteDefault(path string) error {
	doc, err := DefaultJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc+"\n"), 0o644)
}

// escapePath escapes sjson path separators in a chord name.
func escapePath(chord string) string {
	out := make([]byte, 0, len(chord))
	for i := 0; i < len(chord); i++ {
		if chord[i] == '.' || chord[i] == '*' || chord[i] == '?' {
			out = append(out, '\\')
		}
		out = append(out, chord[i])
	}
	return string(out)
}
