// Package gui provides the windowed sandbox view, rendered with
// Ebitengine. The left mouse button pulls particles toward the cursor,
// the right button pushes them away.
package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/programORdie2/verletlab/internal/verlet"
)

const (
	stirRadius   = 120.0
	stirStrength = 4000.0
)

var (
	colBg  = color.RGBA{10, 10, 10, 255}
	colRim = color.RGBA{60, 60, 60, 255}
)

type Game struct {
	sim       *verlet.Simulation
	dt        float64
	frame     int
	paused    bool
	showStats bool
	width     int
	height    int
}

func NewGame(sim *verlet.Simulation, dt float64) *Game {
	cfg := sim.Config()
	return &Game{
		sim:       sim,
		dt:        dt,
		showStats: true,
		width:     int(cfg.Center.X * 2),
		height:    int(cfg.Center.Y * 2),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		g.frame = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showStats = !g.showStats
	}

	// Holding a button re-arms the one-shot stir every tick.
	mx, my := ebiten.CursorPosition()
	at := verlet.Vec2{X: float64(mx), Y: float64(my)}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.sim.Stir(at, stirRadius, stirStrength)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.sim.Stir(at, stirRadius, -stirStrength)
	}

	if g.paused {
		return nil
	}

	g.sim.Advance(g.dt, g.frame)
	g.frame++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)

	cfg := g.sim.Config()
	vector.StrokeCircle(screen,
		float32(cfg.Center.X), float32(cfg.Center.Y), float32(cfg.ContainerRadius),
		1.5, colRim, true)

	subDt := g.dt / float64(cfg.SubSteps)
	ps := g.sim.Particles()
	for i := range ps {
		spd := 0.0
		if subDt > 0 {
			spd = ps[i].Velocity().Length() / subDt
		}
		val := uint8(math.Min(120+spd*0.25, 255))
		vector.DrawFilledCircle(screen,
			float32(ps[i].Pos.X), float32(ps[i].Pos.Y), float32(cfg.ParticleRadius),
			color.RGBA{val, val, val, 255}, true)
	}

	if g.showStats {
		stats := g.sim.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.0f\nParticles: %d / %d\nStep: %.2fms\nSpace:Pause R:Reset T:Stats\nMouse: stir",
			ebiten.ActualFPS(), g.sim.Count(), cfg.MaxParticles,
			float64(stats.Total().Microseconds())/1000))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the sandbox window and blocks until it is closed.
func Run(sim *verlet.Simulation, dt float64, fps int, title string) error {
	game := NewGame(sim, dt)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(title)
	if fps > 0 {
		ebiten.SetTPS(fps)
	}
	return ebiten.RunGame(game)
}
