// Package ebiten provides an Ebiten-based 2D graphical driver: a fixed-tick loop
// that steps the session, mouse tile picking and a top-down view of the grid.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"gridwalk/pkg/game/gameplay"
	"gridwalk/pkg/game/level"
	"gridwalk/pkg/game/renderer"
	"gridwalk/pkg/game/state"
)

// EbitenRenderer runs a session in a window. It implements ebiten.Game.
type EbitenRenderer struct {
	session *state.Session
	cfg     gameplay.Config
	reloads <-chan *level.Level
	tps     int

	tileSize int

	// windowW and windowH are the size last given to the window
	windowW, windowH int

	lastMouseX, lastMouseY int

	windowOpenedLogged bool
}

// New creates a driver for s. Levels received on reloads replace the session
// between ticks; reloads may be nil.
func New(s *state.Session, cfg gameplay.Config, tps int, reloads <-chan *level.Level) *EbitenRenderer {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &EbitenRenderer{
		session:  s,
		cfg:      cfg,
		reloads:  reloads,
		tps:      tps,
		tileSize: defaultTileSize,
	}
}

// Init sizes the window to fit the grid and fixes the tick rate
func (e *EbitenRenderer) Init() {
	e.fitWindow()
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(e.tps)
}

// Clear is a no-op; Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// RenderFrame points the driver at s; the frame itself is painted by Draw
func (e *EbitenRenderer) RenderFrame(s *state.Session) {
	e.session = s
}

// StyleText returns text unchanged; colours come from the palette at draw time
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run starts the Ebiten game loop and blocks until the window closes or the player quits
func (e *EbitenRenderer) Run() error {
	e.Init()
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// windowSize fits the map plus header and footer
func (e *EbitenRenderer) windowSize() (int, int) {
	g := e.session.Grid
	w := g.Width()*e.tileSize + mapMargin*2
	h := headerHeight + g.Height()*e.tileSize + mapMargin + footerLines*lineHeight
	if w < 480 {
		w = 480
	}
	return w, h
}

// resize reports the window size the current grid needs, and whether it differs
// from the size the window was last given
func (e *EbitenRenderer) resize() (int, int, bool) {
	w, h := e.windowSize()
	return w, h, w != e.windowW || h != e.windowH
}

// fitWindow resizes the window when the grid no longer fits it, e.g. after a reload
func (e *EbitenRenderer) fitWindow() {
	w, h, changed := e.resize()
	if !changed {
		return
	}
	e.windowW, e.windowH = w, h
	ebiten.SetWindowSize(w, h)
}

// mapOrigin is the top-left pixel of cell (0,0)
func (e *EbitenRenderer) mapOrigin() (int, int) {
	return mapMargin, headerHeight
}
