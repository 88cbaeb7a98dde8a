package arplace

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the update rate. Zero keeps ebiten's default of 60.
	TPS int
	// MouseAsTouch reports the left mouse button as a single touch when the
	// session reads from an EbitenTouchSource.
	MouseAsTouch bool
	// Script, when set, is replayed through in before live input resumes.
	Script *ScriptRunner
	// HideOverlay disables the debug text overlay.
	HideOverlay bool
	// ModeKeys lets the digit keys 0-5 switch the interaction mode.
	ModeKeys bool
}

// modeKeys maps digit keys to interaction modes, in InteractionMode order.
var modeKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2,
	ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// Run opens a window and drives s from live ebiten touches (and the optional
// script) until the window closes. It is a convenience for desktop testing;
// hosts with their own loop call TouchInput.Next and Session.Update directly.
func Run(s *Session, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	src := &EbitenTouchSource{ScreenHeight: float64(cfg.Height), MouseAsTouch: cfg.MouseAsTouch}
	g := &gameShell{
		session: s,
		input:   NewTouchInput(src),
		clock:   &TickClock{TPS: cfg.TPS},
		script:  cfg.Script,
		cfg:     cfg,
	}
	return ebiten.RunGame(g)
}

// gameShell adapts a Session to ebiten.Game.
type gameShell struct {
	session *Session
	input   *TouchInput
	clock   *TickClock
	script  *ScriptRunner
	cfg     RunConfig
	last    Frame
}

func (g *gameShell) Update() error {
	if g.script != nil {
		g.script.Step(g.session, g.input)
	}
	if g.cfg.ModeKeys {
		for i, k := range modeKeys {
			if inpututil.IsKeyJustPressed(k) {
				g.session.SetMode(InteractionMode(i))
			}
		}
	}
	g.last = g.input.Next(g.clock.Tick())
	g.session.Update(g.last)
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	if g.cfg.HideOverlay {
		return
	}
	g.drawMarkers(screen)
	ebitenutil.DebugPrint(screen, g.overlayText())
}

func (g *gameShell) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// drawMarkers labels every placed node at its projected screen position.
func (g *gameShell) drawMarkers(screen *ebiten.Image) {
	cam := g.session.Camera()
	if cam == nil {
		return
	}
	tracked, _ := g.session.Tracked()
	for _, n := range g.session.Scene().FindTagged(TagPlaceable) {
		if !n.ActiveInHierarchy() {
			continue
		}
		p, ok := cam.WorldToScreen(n.WorldPosition())
		if !ok {
			continue
		}
		label := "+"
		if n == tracked {
			label = "[+]"
		}
		ebitenutil.DebugPrintAt(screen, label, int(p.X), g.cfg.Height-int(p.Y))
	}
}

func (g *gameShell) overlayText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mode: %s\n", g.session.Mode())
	fmt.Fprintf(&b, "touches: %d\n", g.last.TouchCount())
	if n, ok := g.session.Tracked(); ok {
		pos := n.WorldPosition()
		fmt.Fprintf(&b, "tracked: %s (%.2f, %.2f, %.2f) scale %.2f yaw %.1f\n",
			n.Name, pos.X(), pos.Y(), pos.Z(), n.Scale.X(), Yaw(n.WorldRotation()))
	} else {
		b.WriteString("tracked: none\n")
	}
	fmt.Fprintf(&b, "TPS: %.1f", ebiten.ActualTPS())
	return b.String()
}
