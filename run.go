package felt

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the Run game-loop helper.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	ClearColor color.RGBA

	// OnUpdate, when set, runs every tick after input processing with the
	// tick length in seconds. Demos use it to drive their own animations.
	OnUpdate func(dt float64)
}

type game struct {
	table    *Table
	renderer *Renderer
	pointer  PointerSource
	cfg      RunConfig
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.table.Tick(dt)
	g.pointer.Update(g.table)
	if g.cfg.OnUpdate != nil {
		g.cfg.OnUpdate(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	g.renderer.Draw(screen, g.table)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the table with a minimal game loop. For
// full control, implement ebiten.Game yourself and call Table.Tick,
// PointerSource.Update, and Renderer.Draw directly.
func Run(t *Table, r *Renderer, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{table: t, renderer: r, cfg: cfg})
}
