package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorOpen          = color.RGBA{100, 100, 120, 255} // Medium gray floor
	colorObstacle      = color.RGBA{60, 60, 80, 255}    // Dark wall block
	colorPath          = color.RGBA{180, 150, 250, 255} // Blue-purple path markers
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorEnemy         = color.RGBA{255, 80, 80, 255}   // Bright red
	colorCursor        = color.RGBA{100, 220, 255, 160} // Cyan hover outline
)

// Layout, in pixels
const (
	defaultTileSize = 48
	tileGap         = 2
	mapMargin       = 20
	headerHeight    = 40
	footerLines     = 7
	lineHeight      = 16
	windowTitle     = "gridwalk"
)
