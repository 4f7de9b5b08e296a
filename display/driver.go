package display

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

var (
	// Background fills the surface behind live cells
	Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	// Amber is the colour of a live cell
	Amber = color.RGBA{R: 255, G: 192, B: 64, A: 255}
)

// Driver is the render/event surface a simulation runs against
type Driver interface {
	// Render draws g, replacing whatever was shown before
	Render(g model.Generation) error
	// PollQuit reports whether the user asked to stop. It never blocks.
	PollQuit() bool
	// WaitFrame paces the loop between generations
	WaitFrame()
	Close() error
}

// StatusSetter is implemented by drivers that can show text next to the board
type StatusSetter interface {
	SetStatus(lines ...string)
}

// Stepper owns the current generation and advances it one tick at a time
type Stepper interface {
	Current() model.Generation
	// Step advances one generation and reports whether the run is over
	Step() bool
}

// StatusReporter is implemented by steppers that describe their progress
type StatusReporter interface {
	Status() []string
}

// Run drives s against d until the user quits or s reports it is done
func Run(d Driver, s Stepper) error {
	for !d.PollQuit() {
		if setter, ok := d.(StatusSetter); ok {
			if reporter, ok := s.(StatusReporter); ok {
				setter.SetStatus(reporter.Status()...)
			}
		}
		if err := d.Render(s.Current()); err != nil {
			return errors.Wrap(err, "[Run] failed to render generation")
		}
		if s.Step() {
			return nil
		}
		d.WaitFrame()
	}
	return nil
}
