package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"gridwalk/pkg/engine/input"
	"gridwalk/pkg/game/devtools"
	"gridwalk/pkg/game/gameplay"
	"gridwalk/pkg/game/generator"
	"gridwalk/pkg/game/level"
	"gridwalk/pkg/game/renderer"
	ebitenrenderer "gridwalk/pkg/game/renderer/ebiten"
	"gridwalk/pkg/game/renderer/tui"
	"gridwalk/pkg/game/state"
)

func main() {
	levelPath := flag.String("level", "", "level YAML file (default: the embedded courtyard)")
	rendererName := flag.String("renderer", "tui", "frontend: tui or ebiten")
	speed := flag.Float64("speed", 1, "multiplier applied to every agent's speed")
	tps := flag.Int("tps", 60, "fixed simulation ticks per second")
	steps := flag.Int("steps", 0, "ticks run per terminal wait (default: one second of ticks)")
	watch := flag.Bool("watch", false, "reload the -level file when it changes on disk")
	dump := flag.Bool("dump", false, "print the map and exit")
	generate := flag.Bool("generate", false, "play a generated level instead of -level")
	seed := flag.Int64("seed", 0, "seed for -generate (default: current time)")
	width := flag.Int("width", generator.DefaultOptions().Width, "width of a generated level")
	height := flag.Int("height", generator.DefaultOptions().Height, "height of a generated level")
	enemies := flag.Int("enemies", generator.DefaultOptions().Enemies, "enemies in a generated level")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("-tps must be positive, got %d", *tps)
	}
	if *steps <= 0 {
		*steps = *tps
	}

	if *generate && *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	loadLevel := func() (*level.Level, error) {
		if *generate {
			return generator.DefaultGenerator.Generate(generator.Options{
				Width:   *width,
				Height:  *height,
				Enemies: *enemies,
				Seed:    *seed,
			})
		}
		if *levelPath == "" {
			return level.Default()
		}
		return level.Load(*levelPath)
	}

	lvl, err := loadLevel()
	if err != nil {
		log.Fatalf("Cannot load level: %v", err)
	}
	if *generate {
		log.Printf("Generated level with %s, seed %d", generator.DefaultGenerator.Name(), *seed)
	}

	cfg := gameplay.Config{
		DT:         1 / float64(*tps),
		WaitSteps:  *steps,
		SpeedScale: *speed,
		LoadLevel:  loadLevel,
	}

	s, err := gameplay.NewSession(lvl, cfg.SpeedScale)
	if err != nil {
		log.Fatalf("Cannot start session: %v", err)
	}

	if *dump {
		if err := devtools.DumpMap(s, os.Stdout); err != nil {
			log.Fatalf("Map dump failed: %v", err)
		}
		return
	}

	var reloads <-chan *level.Level
	if *watch {
		if *levelPath == "" || *generate {
			log.Fatalf("-watch needs -level and no -generate")
		}
		w, err := level.Watch(*levelPath)
		if err != nil {
			log.Fatalf("Cannot watch level: %v", err)
		}
		defer w.Close()
		go logWatchErrors(w.Errors)
		reloads = w.Levels
		log.Printf("Watching %s for changes", *levelPath)
	}

	switch *rendererName {
	case "ebiten":
		e := ebitenrenderer.New(s, cfg, *tps, reloads)
		renderer.SetRenderer(e)
		if err := e.Run(); err != nil {
			log.Fatalf("ebiten: %v", err)
		}
	case "tui":
		t := tui.New()
		renderer.SetRenderer(t)
		renderer.Init()
		runTerminal(s, cfg, t, reloads)
	default:
		log.Fatalf("Unknown renderer %q (want tui or ebiten)", *rendererName)
	}
}

// runTerminal renders a frame, reads one command and applies it until the player quits
func runTerminal(s *state.Session, cfg gameplay.Config, t *tui.TUIRenderer, reloads <-chan *level.Level) {
	reader := input.NewReader()
	for {
		applyReloads(s, cfg, reloads)

		renderer.Clear()
		renderer.RenderFrame(s)

		intent, err := t.GetInput(reader)
		if errors.Is(err, input.ErrInterrupted) || errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Fatalf("Cannot read stdin: %v", err)
		}
		if !gameplay.ProcessIntent(s, cfg, intent) {
			return
		}
	}
}

// applyReloads swaps in the newest level the watcher delivered, if any
func applyReloads(s *state.Session, cfg gameplay.Config, reloads <-chan *level.Level) {
	select {
	case lvl, ok := <-reloads:
		if !ok {
			return
		}
		if err := gameplay.Reload(s, lvl, cfg.SpeedScale); err != nil {
			log.Printf("Reload failed: %v", err)
		}
	default:
	}
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		log.Printf("Level watch: %v", err)
	}
}
