package patterns

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

// ErrUnknownPattern is returned by Named for names not in the library
var ErrUnknownPattern = errors.New("unknown pattern")

type point = [2]int64

var presets = map[string][]point{
	"ef":          {{0, -1}, {0, 0}, {0, 1}, {0, 2}, {1, -2}, {2, -2}, {-1, 0}, {1, 0}},
	"t":           {{1, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}},
	"inverse-t":   {{1, 0}, {1, 1}, {1, 2}, {0, 2}, {2, 1}},
	"r-pentomino": {{1, 0}, {1, 1}, {1, 2}, {2, 0}, {0, 1}},
	"glider":      {{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}},
	"line-7":      line(-3, 4),
	"line-8":      line(-3, 5),
	"line-8-hook": append(line(-3, 5), point{3, -1}),
	"line-10":     line(-5, 5),
	"cross":       append(line(-5, 5), column(-5, 5)...),
	"arrow":       append(line(-5, 5), point{3, -1}, point{3, 1}, point{2, -2}, point{2, 2}),
	"block":       {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"blinker":     {{0, 0}, {1, 0}, {2, 0}},
	"beehive":     {{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}},
}

// line returns the horizontal run x in [from, to) on row 0
func line(from, to int64) []point {
	out := make([]point, 0, to-from)
	for x := from; x < to; x++ {
		out = append(out, point{x, 0})
	}
	return out
}

// column returns the vertical run y in [from, to) on column 0
func column(from, to int64) []point {
	out := make([]point, 0, to-from)
	for y := from; y < to; y++ {
		out = append(out, point{0, y})
	}
	return out
}

// Names lists the preset names in alphabetical order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Named returns a fresh generation for the given preset
func Named(name string) (model.Generation, error) {
	pts, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return model.Generation{}, errors.Wrapf(ErrUnknownPattern, "[Named] %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	cells := make([]model.Cell, 0, len(pts))
	for _, p := range pts {
		cells = append(cells, model.C(p[0], p[1]))
	}
	return model.NewGeneration(cells...), nil
}
