package ebiten

import (
	"os"
	"testing"

	"gridwalk/pkg/game/gameplay"
	"gridwalk/pkg/game/level"
)

func newSession(t *testing.T, yaml string) *EbitenRenderer {
	t.Helper()
	lvl, err := level.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := gameplay.NewSession(lvl, 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return New(s, gameplay.Config{DT: 1.0 / 60}, 60, nil)
}

func TestResize_AfterReloadToLargerGrid(t *testing.T) {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display")
	}
	e := newSession(t, "name: small\nwidth: 4\nheight: 4\n")
	w, h, _ := e.resize()
	e.windowW, e.windowH = w, h
	if _, _, changed := e.resize(); changed {
		t.Fatal("resize reported a change for an unchanged grid")
	}

	big, err := level.Parse([]byte("name: big\nwidth: 20\nheight: 14\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := gameplay.Reload(e.session, big, 1); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	bw, bh, changed := e.resize()
	if !changed {
		t.Fatal("resize reported no change after the grid grew")
	}
	if bw <= w || bh <= h {
		t.Errorf("window after reload = %dx%d, want larger than %dx%d", bw, bh, w, h)
	}
}
