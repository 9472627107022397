package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "gridwalk/pkg/engine/input"
	"gridwalk/pkg/game/gameplay"
)

// keyCodes maps keys to the raw codes the tiered input bindings understand
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyEnter:      "e",
	ebiten.KeyE:          "e",
	ebiten.KeyR:          "reload",
	ebiten.KeyD:          "dump",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "q",
}

// Update handles input and advances the session by one fixed tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("ebiten: window opened (%dx%d, %d TPS)", w, h, e.tps)
	}

	e.applyReloads()

	for _, intent := range e.pollIntents() {
		if !gameplay.ProcessIntent(e.session, e.cfg, intent) {
			return ebiten.Termination
		}
	}

	e.fitWindow()
	gameplay.Step(e.session, e.cfg.DT)
	return nil
}

// applyReloads swaps in any level the watcher delivered since the last tick
func (e *EbitenRenderer) applyReloads() {
	if e.reloads == nil {
		return
	}
	for {
		select {
		case lvl, ok := <-e.reloads:
			if !ok {
				e.reloads = nil
				return
			}
			if err := gameplay.Reload(e.session, lvl, e.cfg.SpeedScale); err != nil {
				log.Printf("ebiten: reload: %v", err)
			}
		default:
			return
		}
	}
}

// pollIntents turns this tick's key presses and mouse state into intents.
// Moving the mouse moves the hover cursor; a left click selects the tile under it.
func (e *EbitenRenderer) pollIntents() []engineinput.Intent {
	var intents []engineinput.Intent

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code}
			intents = append(intents, engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)))
		}
	}

	ox, oy := e.mapOrigin()
	mx, my := ebiten.CursorPosition()
	moved := mx != e.lastMouseX || my != e.lastMouseY
	e.lastMouseX, e.lastMouseY = mx, my
	if c, ok := e.session.Grid.CellAtPixel(mx-ox, my-oy, e.tileSize); ok {
		if moved {
			e.session.Cursor = c
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			intents = append(intents, engineinput.Intent{Action: engineinput.ActionSelect, Cell: c})
		}
	}
	return intents
}
