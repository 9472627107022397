package renderer

import (
	"gridwalk/pkg/game/i18n"
	"gridwalk/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleOpen
	StyleObstacle
	StylePath
	StylePlayer
	StyleEnemy
	StyleCursor
	StyleTitle
	StyleSubtle
	StyleDenied
)

// Renderer defines the interface for game rendering backends.
// The TUI renders one frame per command; the ebiten driver runs its own loop.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete frame: map, status, messages and prompt
	RenderFrame(s *state.Session)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// StatusLine summarises the session for a status bar
func StatusLine(s *state.Session) string {
	return i18n.T("STATUS", s.Steps, s.Player.Cell(), len(s.Enemies))
}

// HoverLine is the "Tile Position" readout for the hovered cell
func HoverLine(s *state.Session) string {
	return i18n.T("TILE_POSITION", s.Cursor)
}
