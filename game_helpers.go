package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/patterns"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const patternRandom = "random"

// simulation holds the current generation and everything the loop tracks
// between ticks. It implements display.Stepper.
type simulation struct {
	config  utils.Config
	engine  *model.Engine
	rng     *rand.Rand
	current model.Generation
	history *model.History
	stats   *utils.Stats

	generation     int
	stagnantCount  int
	lastRestartGen int
	restarts       int
	status         string
	lastFrameTime  time.Time
	lastEvent      string
}

// newEngine builds the transition engine described by config
func newEngine(config utils.Config) *model.Engine {
	opts := []model.EngineOption{
		model.WithWorkers(config.Workers),
		model.WithParallelThreshold(config.ParallelThreshold),
	}
	if config.UseCellPool {
		opts = append(opts, model.WithCellPool(model.NewCellPool()))
	}
	return model.NewEngine(opts...)
}

// randomRegion returns the sampling rectangle from config
func randomRegion(config utils.Config) patterns.Region {
	return patterns.Region{
		MinX: config.RandomMinX,
		MinY: config.RandomMinY,
		MaxX: config.RandomMaxX,
		MaxY: config.RandomMaxY,
	}
}

// buildSeed picks the initial generation: a pattern file, a named preset or
// a random sample drawn from rng.
func buildSeed(config utils.Config, rng *rand.Rand) (model.Generation, error) {
	var (
		seed model.Generation
		err  error
	)
	switch {
	case config.PatternFile != "":
		seed, err = patterns.LoadFile(config.PatternFile)
	case config.Pattern == patternRandom || config.Pattern == "":
		seed, err = patterns.Random(rng, randomRegion(config), config.RandomCount)
	default:
		seed, err = patterns.Named(config.Pattern)
	}
	if err != nil {
		return model.Generation{}, errors.Wrap(err, "[buildSeed] failed to build initial generation")
	}
	if err = seed.Validate(); err != nil {
		return model.Generation{}, errors.Wrap(err, "[buildSeed] initial generation out of range")
	}
	return seed, nil
}

// newSimulation sets up the initial game state
func newSimulation(config utils.Config, seed model.Generation, rng *rand.Rand) *simulation {
	return &simulation{
		config:        config,
		engine:        newEngine(config),
		rng:           rng,
		current:       seed,
		history:       model.NewHistory(model.DefaultHistoryDepth),
		stats:         utils.NewStats(),
		status:        "Active",
		lastFrameTime: time.Now(),
	}
}

// Current returns the generation to draw
func (s *simulation) Current() model.Generation {
	return s.current
}

// Step records stats for the current generation, applies restart and
// injection policy, then advances. It reports true once MaxGenerations is hit.
func (s *simulation) Step() bool {
	livingCells, isStagnant := s.updateGameState()
	if isStagnant {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}

	if s.config.MaxGenerations > 0 && s.generation >= s.config.MaxGenerations {
		s.lastEvent = fmt.Sprintf("🏁 Reached maximum generations limit (%d)", s.config.MaxGenerations)
		return true
	}

	shouldRestart, reason := checkRestartConditions(livingCells, s.stagnantCount, s.config)
	switch {
	case shouldRestart && s.config.AutoRestart:
		s.restartGame(reason)
	case s.config.AutoRestart && s.stagnantCount >= 2 && s.stagnantCount < s.config.StagnationThreshold:
		// Inject some life to try to break the stagnation
		s.injectRandomLife()
	}

	s.current = s.engine.Advance(s.current)
	s.generation++
	return false
}

// updateGameState updates stats and stagnation tracking for the current generation
func (s *simulation) updateGameState() (int, bool) {
	var (
		livingCells = s.current.Len()
		area        int64
	)
	if b, ok := s.current.Bounds(); ok {
		area = b.Area()
	}

	now := time.Now()
	s.stats.Update(s.generation, livingCells, area, now.Sub(s.lastFrameTime))
	s.lastFrameTime = now

	isStagnant := s.history.IsStagnant(s.current)
	s.history.Push(s.current)

	s.status = "Active"
	if isStagnant {
		s.status = fmt.Sprintf("Stagnant (%d)", s.stagnantCount+1)
	}
	if livingCells == 0 {
		s.status = "Extinct"
	}
	return livingCells, isStagnant
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds with a fresh random generation from the simulation's rng
func (s *simulation) restartGame(reason string) {
	seed, err := patterns.Random(s.rng, randomRegion(s.config), s.config.RandomCount)
	if err != nil {
		s.lastEvent = fmt.Sprintf("Restart failed: %v", err)
		return
	}
	s.current = seed
	s.history.Reset()
	s.stagnantCount = 0
	s.lastRestartGen = s.generation
	s.restarts++
	s.lastEvent = fmt.Sprintf("🔄 Restarted due to %s, living cells: %d", reason, seed.Len())
}

// injectRandomLife adds random cells inside the current bounding box
func (s *simulation) injectRandomLife() {
	b, ok := s.current.Bounds()
	if !ok || s.config.InjectionCount == 0 {
		return
	}
	region := patterns.Region{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX + 1, MaxY: b.MaxY + 1}
	extra, err := patterns.Random(s.rng, region, s.config.InjectionCount)
	if err != nil {
		return
	}
	s.current = s.current.Union(extra)
}

// Status describes the current generation for drivers that show text
func (s *simulation) Status() []string {
	boundingInfo := ""
	if b, ok := s.current.Bounds(); ok {
		boundingInfo = fmt.Sprintf(" | Bounding box: %dx%d", b.Width(), b.Height())
	}

	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d | Status: %s%s",
			s.generation, s.current.Len(), s.status, boundingInfo),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			s.stats.GenerationsPerSecond, s.stats.AveragePopulation, s.stats.Runtime().Seconds()),
	}
	// Show time since last restart
	if s.restarts > 0 && s.generation > s.lastRestartGen {
		lines = append(lines, fmt.Sprintf("Generations since restart: %d", s.generation-s.lastRestartGen))
	}
	if s.lastEvent != "" {
		lines = append(lines, s.lastEvent)
	}
	return lines
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *simulation) {
	fmt.Printf("Driver: %s | Workers: %d | Cell pool: %v | Auto restart: %v\n",
		config.Driver, sim.engine.Workers(), config.UseCellPool, config.AutoRestart)
	fmt.Printf("Initial living cells: %d\n", sim.current.Len())
	fmt.Println("Press Ctrl+C (or q in tcell/ebiten) to exit")
	fmt.Println()
}

// displayFinalStats prints the summary after the loop ends
func displayFinalStats(sim *simulation) {
	if sim.lastEvent != "" {
		fmt.Println(sim.lastEvent)
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		sim.generation, sim.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		sim.stats.GenerationsPerSecond, sim.stats.AveragePopulation)
}
