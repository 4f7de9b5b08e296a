package patterns

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

const (
	// DefaultRandomCount is the number of samples drawn for the default random seed
	DefaultRandomCount = 6502
)

// DefaultRegion is the sampling rectangle of the default random seed
var DefaultRegion = Region{MinX: -80, MinY: -50, MaxX: 80, MaxY: 50}

// Region is a half-open rectangle [MinX, MaxX) x [MinY, MaxY)
type Region struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

// Empty reports whether the region holds no cells
func (r Region) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// NewRNG returns a deterministic generator for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Random draws count cells uniformly from region using rng. Repeated draws
// collapse, so the result may hold fewer than count cells.
func Random(rng *rand.Rand, region Region, count int) (model.Generation, error) {
	if rng == nil {
		return model.Generation{}, errors.New("[Random] nil random generator")
	}
	if region.Empty() {
		return model.Generation{}, errors.Errorf("[Random] empty region: %+v", region)
	}
	if count < 0 {
		return model.Generation{}, errors.Errorf("[Random] negative count: %d", count)
	}

	var (
		w     = region.MaxX - region.MinX
		h     = region.MaxY - region.MinY
		cells = make([]model.Cell, 0, count)
	)
	for range count {
		cells = append(cells, model.C(region.MinX+rng.Int64N(w), region.MinY+rng.Int64N(h)))
	}
	return model.NewGeneration(cells...), nil
}
