//go:build ebiten

package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
)

// ebitenGame adapts a Stepper to the ebiten.Game interface
type ebitenGame struct {
	stepper  Stepper
	viewport Viewport
	done     bool
}

// Update handles quit keys and advances the simulation once per tick
func (g *ebitenGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.done {
		return ebiten.Termination
	}
	g.done = g.stepper.Step()
	return nil
}

// Draw paints every visible live cell as a Scale x Scale square
func (g *ebitenGame) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	size := float32(g.viewport.Scale)
	for c := range g.stepper.Current().All() {
		x, y, ok := g.viewport.Project(c)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, Amber, false)
	}
}

// Layout returns the logical screen size
func (g *ebitenGame) Layout(int, int) (int, int) {
	return g.viewport.Width, g.viewport.Height
}

// RunEbiten opens a window and runs s until it is done or the user quits
func RunEbiten(s Stepper, opts WindowOptions) error {
	opts = opts.withDefaults()
	game := &ebitenGame{
		stepper:  s,
		viewport: CenteredViewport(opts.Width, opts.Height, opts.Scale),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(opts.TPS())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[RunEbiten] game loop failed")
	}
	return nil
}

