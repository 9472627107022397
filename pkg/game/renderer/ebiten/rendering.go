package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridwalk/pkg/engine/world"
	"gridwalk/pkg/game/devtools"
	"gridwalk/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	s := e.session
	screen.Fill(colorBackground)

	ox, oy := e.mapOrigin()
	g := s.Grid
	ts := float32(e.tileSize)

	if s.Level != nil {
		ebitenutil.DebugPrintAt(screen, s.Level.Name, mapMargin, headerHeight/2-lineHeight/2)
	}

	vector.DrawFilledRect(screen, float32(ox-tileGap), float32(oy-tileGap),
		float32(g.Width())*ts+tileGap*2, float32(g.Height())*ts+tileGap*2,
		colorMapBackground, false)

	path := devtools.PathCells(s)
	g.ForEachCell(func(c world.Cell, blocked bool) {
		x, y := float32(ox+c.X*e.tileSize), float32(oy+c.Y*e.tileSize)
		fill := colorOpen
		if blocked {
			fill = colorObstacle
		}
		vector.DrawFilledRect(screen, x+tileGap, y+tileGap, ts-tileGap*2, ts-tileGap*2, fill, false)
		if path.Has(c) {
			m := ts / 3
			vector.DrawFilledRect(screen, x+m, y+m, ts-m*2, ts-m*2, colorPath, false)
		}
	})

	e.drawCursor(screen, ox, oy)

	for _, en := range s.Enemies {
		e.drawAgent(screen, en.Position(), colorEnemy)
	}
	e.drawAgent(screen, s.Player.Position(), colorPlayer)

	e.drawFooter(screen, oy+g.Height()*e.tileSize+mapMargin/2)
}

// drawAgent draws a marker at a world position, so motion between tiles is smooth
func (e *EbitenRenderer) drawAgent(screen *ebiten.Image, p world.Position, c color.Color) {
	ox, oy := e.mapOrigin()
	spacing := e.session.Grid.Mapper().Spacing()
	ts := float32(e.tileSize)
	cx := float32(ox) + float32(p.X/spacing)*ts + ts/2
	cy := float32(oy) + float32(p.Z/spacing)*ts + ts/2
	r := ts / 4
	vector.DrawFilledRect(screen, cx-r, cy-r, r*2, r*2, c, true)
}

// drawCursor outlines the hovered tile
func (e *EbitenRenderer) drawCursor(screen *ebiten.Image, ox, oy int) {
	c := e.session.Cursor
	if !e.session.Grid.InBounds(c) {
		return
	}
	x, y := float32(ox+c.X*e.tileSize), float32(oy+c.Y*e.tileSize)
	ts := float32(e.tileSize)
	const w = 2
	vector.DrawFilledRect(screen, x, y, ts, w, colorCursor, false)
	vector.DrawFilledRect(screen, x, y+ts-w, ts, w, colorCursor, false)
	vector.DrawFilledRect(screen, x, y, w, ts, colorCursor, false)
	vector.DrawFilledRect(screen, x+ts-w, y, w, ts, colorCursor, false)
}

// drawFooter prints the status and hover lines, then the message log
func (e *EbitenRenderer) drawFooter(screen *ebiten.Image, y int) {
	s := e.session
	ebitenutil.DebugPrintAt(screen, renderer.StatusLine(s), mapMargin, y)
	ebitenutil.DebugPrintAt(screen, renderer.HoverLine(s), mapMargin, y+lineHeight)
	for i, msg := range s.Messages {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("- %s", msg), mapMargin, y+(i+2)*lineHeight)
	}
}
