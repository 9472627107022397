package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"gridwalk/pkg/engine/input"
	"gridwalk/pkg/engine/terminal"
	"gridwalk/pkg/engine/world"
	"gridwalk/pkg/game/devtools"
	"gridwalk/pkg/game/i18n"
	"gridwalk/pkg/game/renderer"
	"gridwalk/pkg/game/state"
)

// Icon constants for the map
const (
	IconPlayer   = "@"
	IconEnemy    = "E"
	IconObstacle = "▒"
	IconOpen     = "·"
	IconPath     = "•"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorOpen     color.Style
	colorObstacle color.Style
	colorPath     color.Style
	colorPlayer   color.Style
	colorEnemy    color.Style
	colorCursor   color.Style
	colorTitle    color.Style
	colorSubtle   color.Style
	colorDenied   color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorOpen = color.Style{color.FgGray}
	t.colorObstacle = color.Style{color.FgGray, color.OpBold}
	t.colorPath = color.Style{color.FgMagenta}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorCursor = color.Style{color.FgBlack, color.BgCyan}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// GetInput reads one command from r and returns a high-level Intent.
func (t *TUIRenderer) GetInput(r *input.Reader) (input.Intent, error) {
	return r.Next()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleOpen:
		return t.colorOpen.Sprint(text)
	case renderer.StyleObstacle:
		return t.colorObstacle.Sprint(text)
	case renderer.StylePath:
		return t.colorPath.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleCursor:
		return t.colorCursor.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	if s.Level != nil {
		fmt.Fprintf(t.out, "%s\n\n", t.StyleText(s.Level.Name, renderer.StyleTitle))
	}

	t.printMap(s)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, renderer.StatusLine(s))
	fmt.Fprintln(t.out, t.StyleText(renderer.HoverLine(s), renderer.StyleSubtle))

	t.printMessagesPane(s)

	fmt.Fprint(t.out, "\n> ")
}

// renderCell returns the styled icon for a cell
func (t *TUIRenderer) renderCell(sym rune) string {
	switch sym {
	case devtools.SymbolPlayer:
		return t.StyleText(IconPlayer, renderer.StylePlayer)
	case devtools.SymbolEnemy:
		return t.StyleText(IconEnemy, renderer.StyleEnemy)
	case devtools.SymbolPath:
		return t.StyleText(IconPath, renderer.StylePath)
	case devtools.SymbolObstacle:
		return t.StyleText(IconObstacle, renderer.StyleObstacle)
	default:
		return t.StyleText(IconOpen, renderer.StyleOpen)
	}
}

// printMap renders the grid, row y=0 at the top, centred in the terminal.
// Each cell is two columns wide; the hovered cell is bracketed.
func (t *TUIRenderer) printMap(s *state.Session) {
	termWidth := terminal.GetWidth()
	mapWidth := s.Grid.Width()*2 + 1
	indent := ""
	if termWidth > mapWidth {
		indent = strings.Repeat(" ", (termWidth-mapWidth)/2)
	}

	path := devtools.PathCells(s)
	for y := 0; y < s.Grid.Height(); y++ {
		var line strings.Builder
		line.WriteString(indent)
		for x := 0; x < s.Grid.Width(); x++ {
			c := world.Cell{X: x, Y: y}
			line.WriteString(t.separator(s, c))
			line.WriteString(t.renderCell(devtools.CellSymbol(s, path, c)))
		}
		line.WriteString(t.separator(s, world.Cell{X: s.Grid.Width(), Y: y}))
		fmt.Fprintln(t.out, strings.TrimRight(line.String(), " "))
	}
}

// separator is the column before c: an opening bracket on the cursor, a closing
// one just after it, otherwise a space
func (t *TUIRenderer) separator(s *state.Session, c world.Cell) string {
	switch {
	case c == s.Cursor:
		return t.StyleText("[", renderer.StyleCursor)
	case c.X-1 == s.Cursor.X && c.Y == s.Cursor.Y:
		return t.StyleText("]", renderer.StyleCursor)
	default:
		return " "
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *state.Session) {
	width := terminal.GetWidth()

	label := " " + i18n.T("MESSAGES") + " "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.StyleText(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen), renderer.StyleSubtle))

	if len(s.Messages) == 0 {
		fmt.Fprintln(t.out, t.StyleText("  "+i18n.T("NO_MESSAGES"), renderer.StyleSubtle))
	} else {
		for _, msg := range s.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle))
}
