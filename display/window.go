package display

import "time"

// WindowOptions configures the ebiten window driver
type WindowOptions struct {
	Title  string
	Width  int
	Height int
	Scale  int
	Frame  time.Duration
}

func (o WindowOptions) withDefaults() WindowOptions {
	if o.Title == "" {
		o.Title = "go-sparse-gol"
	}
	if o.Width <= 0 {
		o.Width = 1000
	}
	if o.Height <= 0 {
		o.Height = 564
	}
	if o.Scale <= 0 {
		o.Scale = 3
	}
	return o
}

// TPS converts the frame delay into ebiten ticks per second
func (o WindowOptions) TPS() int {
	if o.Frame <= 0 {
		return 60
	}
	return max(int(time.Second/o.Frame), 1)
}
