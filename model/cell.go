package model

import (
	"fmt"
	"iter"
)

// MaxCoordinate bounds the magnitude of a seed coordinate. A pattern grows by
// at most one cell per generation, so a seed inside this range stays far from
// int64 overflow for any practical run.
const MaxCoordinate int64 = 1 << 62

// Cell is a coordinate on the unbounded plane
type Cell struct {
	X int64
	Y int64
}

// C is shorthand for building a Cell
func C(x, y int64) Cell {
	return Cell{X: x, Y: y}
}

// Offset returns the cell displaced by (dx, dy)
func (c Cell) Offset(dx, dy int64) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InRange reports whether both coordinates lie within ±MaxCoordinate
func (c Cell) InRange() bool {
	return c.X >= -MaxCoordinate && c.X <= MaxCoordinate &&
		c.Y >= -MaxCoordinate && c.Y <= MaxCoordinate
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// NeighborOffsets lists the Moore neighborhood relative to a cell.
var NeighborOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors yields the eight cells at Chebyshev distance 1 from c.
// The sequence can be ranged over any number of times.
func Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, o := range NeighborOffsets {
			if !yield(Cell{X: c.X + o.X, Y: c.Y + o.Y}) {
				return
			}
		}
	}
}
