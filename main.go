package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/display"
	"github.com/sheikhrachel/go-sparse-gol/patterns"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	rng := patterns.NewRNG(config.Seed)
	seed, err := buildSeed(config, rng)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	sim := newSimulation(config, seed, rng)
	displayGameInfo(config, sim)

	if err = run(config, sim); err != nil {
		log.Fatalf("%+v", err)
	}
	displayFinalStats(sim)
}

// run hands the simulation to the configured display driver
func run(config utils.Config, sim *simulation) error {
	if config.Driver == utils.DriverEbiten {
		return display.RunEbiten(sim, display.WindowOptions{
			Title:  "go-sparse-gol",
			Width:  config.ViewWidth,
			Height: config.ViewHeight,
			Scale:  config.Scale,
			Frame:  config.FrameRate,
		})
	}

	driver, err := newDriver(config)
	if err != nil {
		return err
	}
	defer driver.Close()

	return display.Run(driver, sim)
}

// newDriver opens the terminal driver named in config
func newDriver(config utils.Config) (display.Driver, error) {
	switch config.Driver {
	case utils.DriverTcell:
		driver, err := display.NewTcellDriver(config.FrameRate)
		if err != nil {
			return nil, errors.Wrap(err, "[newDriver] failed to open tcell screen")
		}
		return driver, nil
	case utils.DriverTerminal:
		return display.NewTerminalDriver(os.Stdout, config.TermWidth, config.TermHeight, config.FrameRate), nil
	default:
		return nil, errors.Errorf("[newDriver] unknown driver: %q", config.Driver)
	}
}
