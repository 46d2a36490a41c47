package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/driver"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

const defaultConfigPath = "config.json"

// loadConfig reads the JSON config named by -config (falling back to
// defaults when it does not exist) and then applies the remaining flags
func loadConfig(args []string) (utils.Config, error) {
	path := defaultConfigPath
	probe := flag.NewFlagSet("probe", flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	probe.StringVar(&path, "config", path, "")
	scratch := utils.DefaultConfig()
	scratch.Bind(probe)
	_ = probe.Parse(args)

	config, err := utils.LoadConfig(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Printf("Using default configuration (%s not found)\n", path)
		config = utils.DefaultConfig()
	case err != nil:
		return config, err
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.String("config", path, "path to a JSON config file")
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Grid, *model.TerminalRenderer, error) {
	renderer := model.NewTerminalRenderer(os.Stdout)

	grid, err := model.NewGrid(config.Width, config.Height, renderer)
	if err != nil {
		return nil, nil, err
	}
	grid.SetSeed(config.EffectiveSeed())

	if err = seedGrid(grid, config); err != nil {
		return nil, nil, err
	}
	return grid, renderer, nil
}

// seedGrid fills the grid according to the configured seed mode
func seedGrid(grid *model.Grid, config utils.Config) error {
	switch config.SeedMode {
	case utils.SeedModePatterns:
		return grid.ResetWithInterestingPatterns(config)
	case utils.SeedModeNoise:
		return grid.SeedNoise(config.NoiseThreshold)
	case utils.SeedModeEmpty:
		grid.Clear()
		return nil
	default:
		return grid.Randomize(config.RandomDensity)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Seed mode: %s | Step period: %v\n", config.SeedMode, config.Period())
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(res model.StepResult, stats utils.Stats, cells int) {
	density := float64(res.Population) / float64(cells) * 100

	status := "Active"
	if res.Steady() {
		status = "Steady"
	}
	if res.Population == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Changed: %d | Density: %.1f%% | Status: %s\n",
		res.Generation, res.Population, res.Changed, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// displayFinalStats prints the shutdown summary
func displayFinalStats(reason string, stats utils.Stats) {
	fmt.Printf("\n🛑 Stopped: %s\n", reason)
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runGame starts the driver and blocks until steady state, the generation
// limit, or cancellation of ctx. It returns why the run ended.
func runGame(ctx context.Context, d *driver.Driver, renderer *model.TerminalRenderer, config utils.Config) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		limitReached = make(chan struct{})
		limitOnce    sync.Once
	)
	width, height := d.Size()
	d.SetStepHook(func(res model.StepResult, stats utils.Stats) {
		renderer.Clear()
		displayGameStatus(res, stats, width*height)
		renderer.Display()

		if config.MaxGenerations > 0 && res.Generation >= config.MaxGenerations {
			limitOnce.Do(func() { close(limitReached) })
		}
	})

	reason := "interrupted"
	steady := d.Start()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		select {
		case <-steady:
			reason = "steady state reached"
		case <-limitReached:
			reason = fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
		case <-ctx.Done():
			return nil
		}
		cancel()
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		d.Stop()
		return nil
	})

	err := eg.Wait()
	return reason, err
}
