package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-sparse-gol/rules"
)

// DefaultParallelThreshold is the candidate pool size from which an engine
// with more than one worker splits evaluation across goroutines.
const DefaultParallelThreshold = 4096

// Engine computes successive generations
type Engine struct {
	workers           int
	parallelThreshold int
	pool              *CellPool
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithWorkers sets the number of goroutines used for large candidate pools.
// Values below 1 mean runtime.NumCPU().
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		e.workers = n
	}
}

// WithParallelThreshold sets the minimum candidate pool size for parallel evaluation
func WithParallelThreshold(n int) EngineOption {
	return func(e *Engine) {
		e.parallelThreshold = max(n, 1)
	}
}

// WithCellPool recycles candidate buffers between generations
func WithCellPool(p *CellPool) EngineOption {
	return func(e *Engine) {
		e.pool = p
	}
}

// NewEngine returns a sequential engine unless options say otherwise
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		workers:           1,
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the configured worker count
func (e *Engine) Workers() int {
	return e.workers
}

var sequential = NewEngine()

// Advance computes the next generation with a sequential engine
func Advance(g Generation) Generation {
	return sequential.Advance(g)
}

// Advance returns the generation following g. The input is never modified.
func (e *Engine) Advance(g Generation) Generation {
	if g.IsEmpty() {
		return Generation{}
	}

	candidates := e.candidates(g)
	defer CellsToPool(candidates, e.pool)

	if e.workers > 1 && len(*candidates) >= e.parallelThreshold {
		return e.advanceParallel(g, *candidates)
	}

	next := make(map[Cell]struct{}, g.Len())
	for _, c := range *candidates {
		if lives(g, c) {
			next[c] = struct{}{}
		}
	}
	return Generation{cells: next}
}

// candidates gathers every live cell and every neighbor of a live cell.
// Dead cells with no live neighbor can never be born and are never visited.
func (e *Engine) candidates(g Generation) *[]Cell {
	seen := make(map[Cell]struct{}, g.Len()*4)
	for c := range g.cells {
		seen[c] = struct{}{}
		for n := range Neighbors(c) {
			seen[n] = struct{}{}
		}
	}

	var buf *[]Cell
	if e.pool != nil {
		buf = e.pool.Get(len(seen))
	} else {
		s := make([]Cell, 0, len(seen))
		buf = &s
	}
	for c := range seen {
		*buf = append(*buf, c)
	}
	return buf
}

// advanceParallel evaluates contiguous chunks of candidates concurrently.
// Workers only read g and write to their own survivor slice.
func (e *Engine) advanceParallel(g Generation, candidates []Cell) Generation {
	var (
		eg              errgroup.Group
		numWorkers      = min(e.workers, len(candidates))
		cellsPerWorker  = (len(candidates) + numWorkers - 1) / numWorkers // Ceiling division
		survivorsByPart = make([][]Cell, numWorkers)
	)

	for i := range numWorkers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			var survivors []Cell
			for _, c := range candidates[start:end] {
				if lives(g, c) {
					survivors = append(survivors, c)
				}
			}
			survivorsByPart[i] = survivors
			return nil
		})
	}

	// workers never return an error
	_ = eg.Wait()

	next := make(map[Cell]struct{}, g.Len())
	for _, part := range survivorsByPart {
		for _, c := range part {
			next[c] = struct{}{}
		}
	}
	return Generation{cells: next}
}

// LiveNeighbors counts the members of g adjacent to c
func LiveNeighbors(g Generation, c Cell) int {
	count := 0
	for n := range Neighbors(c) {
		if g.Contains(n) {
			count++
		}
	}
	return count
}

func lives(g Generation, c Cell) bool {
	return rules.ApplyConwayRules(LiveNeighbors(g, c), g.Contains(c))
}
