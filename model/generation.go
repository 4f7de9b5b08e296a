package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// ErrCoordinateOutOfRange is returned by Validate for cells beyond MaxCoordinate
var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// Generation is an immutable set of live cells.
// The zero value is the empty generation.
type Generation struct {
	cells map[Cell]struct{}
}

// NewGeneration builds a generation from the given cells, collapsing duplicates
func NewGeneration(cells ...Cell) Generation {
	set := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return Generation{cells: set}
}

// Collect builds a generation from a cell sequence
func Collect(seq iter.Seq[Cell]) Generation {
	set := make(map[Cell]struct{})
	for c := range seq {
		set[c] = struct{}{}
	}
	return Generation{cells: set}
}

// Len returns the number of live cells
func (g Generation) Len() int {
	return len(g.cells)
}

// IsEmpty reports whether no cell is alive
func (g Generation) IsEmpty() bool {
	return len(g.cells) == 0
}

// Contains reports whether c is alive
func (g Generation) Contains(c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// All yields every live cell in unspecified order
func (g Generation) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Cells returns the live cells sorted row-major (by Y, then X)
func (g Generation) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

func compareCells(a, b Cell) int {
	if n := cmp.Compare(a.Y, b.Y); n != 0 {
		return n
	}
	return cmp.Compare(a.X, b.X)
}

// Equal reports whether both generations hold exactly the same cells
func (g Generation) Equal(other Generation) bool {
	if len(g.cells) != len(other.cells) {
		return false
	}
	for c := range g.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Translate returns a copy of the generation shifted by (dx, dy)
func (g Generation) Translate(dx, dy int64) Generation {
	set := make(map[Cell]struct{}, len(g.cells))
	for c := range g.cells {
		set[c.Offset(dx, dy)] = struct{}{}
	}
	return Generation{cells: set}
}

// Union returns a new generation holding the cells of both
func (g Generation) Union(other Generation) Generation {
	set := make(map[Cell]struct{}, len(g.cells)+len(other.cells))
	for c := range g.cells {
		set[c] = struct{}{}
	}
	for c := range other.cells {
		set[c] = struct{}{}
	}
	return Generation{cells: set}
}

// Bounds returns the bounding box of the live cells, or false when empty
func (g Generation) Bounds() (Bounds, bool) {
	var (
		b     Bounds
		valid bool
	)
	for c := range g.cells {
		if !valid {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			valid = true
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return b, valid
}

// Hash returns an MD5 digest of the sorted cell list.
// Equal generations always hash the same regardless of insertion order.
func (g Generation) Hash() string {
	h := md5.New()
	var buf [16]byte
	for _, c := range g.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Validate checks every cell lies within ±MaxCoordinate
func (g Generation) Validate() error {
	for c := range g.cells {
		if !c.InRange() {
			return errors.Wrapf(ErrCoordinateOutOfRange, "[Validate] cell %v exceeds ±%d", c, MaxCoordinate)
		}
	}
	return nil
}

// Bounds is an inclusive bounding box on the plane
type Bounds struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

// Width returns the number of columns covered
func (b Bounds) Width() int64 { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows covered
func (b Bounds) Height() int64 { return b.MaxY - b.MinY + 1 }

// Area returns the number of cells covered
func (b Bounds) Area() int64 { return b.Width() * b.Height() }
