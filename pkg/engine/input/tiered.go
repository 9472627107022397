package input

import (
	"strconv"
	"strings"
	"time"

	"gridwalk/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement, in screen terms (row y=0 at the top)
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight

	// Selection
	ActionSelect       // Walk to Intent.Cell
	ActionSelectCursor // Walk to the hovered cell

	// Meta
	ActionWait // Let the simulation run without new input
	ActionReload
	ActionDump // Write map.txt
	ActionHelp
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
// Cell is only meaningful for ActionSelect.
type Intent struct {
	Action Action
	Cell   world.Cell
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "3,4", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Terminal lines and ebiten's just-pressed checks are already one event per press,
// so this only normalises the code.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_up":    ActionCursorUp,
	"k":           ActionCursorUp,
	"arrow_down":  ActionCursorDown,
	"j":           ActionCursorDown,
	"arrow_left":  ActionCursorLeft,
	"h":           ActionCursorLeft,
	"arrow_right": ActionCursorRight,
	"l":           ActionCursorRight,

	"e":      ActionSelectCursor,
	"select": ActionSelectCursor,

	"":     ActionWait,
	"wait": ActionWait,
	"w":    ActionWait,

	"reload": ActionReload,
	"r":      ActionReload,

	"dump": ActionDump,

	"?":    ActionHelp,
	"help": ActionHelp,

	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced input
// and returns a high-level Intent. Codes of the form "x,y" or "x y" select that cell.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	if c, ok := ParseCell(ev.Code); ok {
		return Intent{Action: ActionSelect, Cell: c}
	}
	return Intent{Action: ActionNone}
}

// ParseCell parses "x,y", "x y" or "(x, y)" into a cell
func ParseCell(code string) (world.Cell, bool) {
	code = strings.Trim(strings.TrimSpace(code), "()")
	fields := strings.FieldsFunc(code, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return world.Cell{}, false
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return world.Cell{}, false
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return world.Cell{}, false
	}
	return world.Cell{X: x, Y: y}, true
}

// CursorDelta returns the cell offset for a cursor action
func CursorDelta(a Action) (dx, dy int, ok bool) {
	switch a {
	case ActionCursorUp:
		return 0, -1, true
	case ActionCursorDown:
		return 0, 1, true
	case ActionCursorLeft:
		return -1, 0, true
	case ActionCursorRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionCursorUp:
		return "Cursor Up"
	case ActionCursorDown:
		return "Cursor Down"
	case ActionCursorLeft:
		return "Cursor Left"
	case ActionCursorRight:
		return "Cursor Right"
	case ActionSelect:
		return "Select"
	case ActionSelectCursor:
		return "Select Cursor"
	case ActionWait:
		return "Wait"
	case ActionReload:
		return "Reload"
	case ActionDump:
		return "Dump Map"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
