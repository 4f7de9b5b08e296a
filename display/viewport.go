package display

import "github.com/sheikhrachel/go-sparse-gol/model"

// Viewport maps plane coordinates onto a bounded screen surface:
// screen = cell*Scale + Origin.
type Viewport struct {
	Scale   int
	OriginX int
	OriginY int
	Width   int
	Height  int
}

// CenteredViewport places cell (0,0) in the middle of a width x height surface
func CenteredViewport(width, height, scale int) Viewport {
	return Viewport{
		Scale:   max(scale, 1),
		OriginX: width >> 1,
		OriginY: height >> 1,
		Width:   width,
		Height:  height,
	}
}

// Project returns the top-left screen position of c, or false when any part of
// the cell would fall outside the surface.
func (v Viewport) Project(c model.Cell) (x, y int, ok bool) {
	scale := int64(max(v.Scale, 1))
	minX, maxX := v.visible(int64(v.OriginX), int64(v.Width), scale)
	minY, maxY := v.visible(int64(v.OriginY), int64(v.Height), scale)
	if c.X < minX || c.X > maxX || c.Y < minY || c.Y > maxY {
		return 0, 0, false
	}
	return int(c.X*scale) + v.OriginX, int(c.Y*scale) + v.OriginY, true
}

// visible returns the inclusive range of cell coordinates whose whole unit
// fits inside [0, size).
func (v Viewport) visible(origin, size, scale int64) (int64, int64) {
	return ceilDiv(-origin, scale), floorDiv(size-scale-origin, scale)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}
