package gameplay

import (
	engineinput "gridwalk/pkg/engine/input"
	"gridwalk/pkg/game/devtools"
	"gridwalk/pkg/game/level"
	"gridwalk/pkg/game/state"
)

// Config holds the driver settings ProcessIntent needs
type Config struct {
	DT         float64 // Seconds per tick
	WaitSteps  int     // Ticks run by a wait
	SpeedScale float64

	// LoadLevel re-reads the current level for ActionReload; nil disables reloading
	LoadLevel func() (*level.Level, error)
}

// ProcessIntent handles a high-level input intent from the tiered input system.
// It returns false once the player asks to quit.
func ProcessIntent(s *state.Session, cfg Config, intent engineinput.Intent) bool {
	if dx, dy, ok := engineinput.CursorDelta(intent.Action); ok {
		MoveCursor(s, dx, dy)
		return true
	}

	switch intent.Action {
	case engineinput.ActionQuit:
		return false

	case engineinput.ActionSelect:
		Select(s, intent.Cell)

	case engineinput.ActionSelectCursor:
		Select(s, s.Cursor)

	case engineinput.ActionWait:
		Run(s, cfg.DT, cfg.WaitSteps)

	case engineinput.ActionReload:
		if cfg.LoadLevel == nil {
			return true
		}
		lvl, err := cfg.LoadLevel()
		if err != nil {
			logMessage(s, "RELOAD_FAILED", err)
			return true
		}
		_ = Reload(s, lvl, cfg.SpeedScale)

	case engineinput.ActionDump:
		path, err := devtools.DumpMapToFile(s)
		if err != nil {
			logMessage(s, "DUMP_FAILED", err)
		} else {
			logMessage(s, "DUMPED", path)
		}

	case engineinput.ActionHelp:
		logMessage(s, "HELP")
	}
	return true
}
