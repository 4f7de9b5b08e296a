package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/display"
	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/patterns"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Workers = 1
	config.RandomCount = 500
	return config
}

func TestBuildSeed(t *testing.T) {
	config := testConfig()

	config.Pattern = "glider"
	g, err := buildSeed(config, patterns.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	glider, _ := patterns.Named("glider")
	if !g.Equal(glider) {
		t.Fatalf("seed = %v", g.Cells())
	}

	config.Pattern = "random"
	a, err := buildSeed(config, patterns.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := buildSeed(config, patterns.NewRNG(5))
	if a.IsEmpty() || !a.Equal(b) {
		t.Fatal("random seed must be reproducible from the rng")
	}

	config.Pattern = "nope"
	if _, err = buildSeed(config, patterns.NewRNG(1)); errors.Cause(err) != patterns.ErrUnknownPattern {
		t.Fatalf("err = %v, expected ErrUnknownPattern", err)
	}
}

func TestBuildSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.lif")
	if err := os.WriteFile(path, []byte("#Life 1.06\n0 0\n1 0\n2 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config := testConfig()
	config.Pattern = "glider"
	config.PatternFile = path

	g, err := buildSeed(config, patterns.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 3 {
		t.Fatalf("file must take precedence over the preset, got %v", g.Cells())
	}
}

func TestSimulationStopsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 4
	glider, _ := patterns.Named("glider")
	sim := newSimulation(config, glider, patterns.NewRNG(1))

	for i := range 4 {
		if sim.Step() {
			t.Fatalf("stopped early at step %d", i)
		}
	}
	if !sim.Step() {
		t.Fatal("expected the run to end after 4 generations")
	}
	if !sim.Current().Equal(glider.Translate(1, -1)) {
		t.Fatalf("glider after 4 generations = %v", sim.Current().Cells())
	}
	if !strings.HasPrefix(sim.Status()[0], "Gen: 4 | Living: 5") {
		t.Fatalf("status = %q", sim.Status()[0])
	}
}

func TestSimulationRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.AutoRestart = true
	sim := newSimulation(config, model.NewGeneration(model.C(5, 5)), patterns.NewRNG(3))

	sim.Step() // the lone cell dies
	if !sim.Current().IsEmpty() {
		t.Fatal("expected extinction")
	}
	sim.Step()
	if sim.restarts != 1 || !strings.Contains(sim.lastEvent, "extinction") {
		t.Fatalf("restarts=%d event=%q", sim.restarts, sim.lastEvent)
	}
	if sim.Current().IsEmpty() {
		t.Fatal("restart must reseed the board")
	}
}

func TestSimulationWithoutRestartStaysExtinct(t *testing.T) {
	config := testConfig()
	sim := newSimulation(config, model.NewGeneration(model.C(5, 5)), patterns.NewRNG(3))
	for range 3 {
		sim.Step()
	}
	if !sim.Current().IsEmpty() || sim.restarts != 0 {
		t.Fatal("an extinct board stays empty without auto restart")
	}
	if sim.status != "Extinct" {
		t.Fatalf("status = %q", sim.status)
	}
}

func TestSimulationRestartsOnStagnation(t *testing.T) {
	config := testConfig()
	config.AutoRestart = true
	config.InjectionCount = 0
	block, _ := patterns.Named("block")
	sim := newSimulation(config, block, patterns.NewRNG(9))

	// three states must be recorded before stagnation counts, then the
	// threshold of 5 consecutive stagnant generations triggers the restart
	for range 7 {
		sim.Step()
	}
	if sim.restarts != 0 {
		t.Fatalf("restarted too early: %q", sim.lastEvent)
	}
	sim.Step()
	if sim.restarts != 1 || !strings.Contains(sim.lastEvent, "stagnation") {
		t.Fatalf("restarts=%d event=%q", sim.restarts, sim.lastEvent)
	}
}

func TestInjectRandomLifeStaysInBounds(t *testing.T) {
	config := testConfig()
	config.InjectionCount = 5
	beehive, _ := patterns.Named("beehive")
	sim := newSimulation(config, beehive, patterns.NewRNG(2))

	sim.injectRandomLife()
	if sim.Current().Len() < beehive.Len() {
		t.Fatal("injection removed cells")
	}
	before, _ := beehive.Bounds()
	after, _ := sim.Current().Bounds()
	if after != before {
		t.Fatalf("bounds changed from %+v to %+v", before, after)
	}
}

type scriptedDriver struct {
	frames int
	limit  int
}

func (d *scriptedDriver) Render(model.Generation) error { d.frames++; return nil }
func (d *scriptedDriver) PollQuit() bool                { return d.frames >= d.limit }
func (d *scriptedDriver) WaitFrame()                    {}
func (d *scriptedDriver) Close() error                  { return nil }

func TestSimulationDrivenByDisplayRun(t *testing.T) {
	config := testConfig()
	blinker, _ := patterns.Named("blinker")
	sim := newSimulation(config, blinker, patterns.NewRNG(1))

	if err := display.Run(&scriptedDriver{limit: 6}, sim); err != nil {
		t.Fatal(err)
	}
	if sim.generation != 6 || !sim.Current().Equal(blinker) {
		t.Fatalf("generation=%d cells=%v", sim.generation, sim.Current().Cells())
	}
	if sim.status != "Stagnant (3)" {
		t.Fatalf("status = %q", sim.status)
	}
}

func TestNewDriverRejectsUnknown(t *testing.T) {
	config := testConfig()
	config.Driver = "crt"
	if _, err := newDriver(config); err == nil {
		t.Fatal("expected an error")
	}
}
