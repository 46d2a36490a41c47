package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-gol/driver"
	"github.com/sheikhrachel/go-gol/schedule"
)

func main() {
	config, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Println("Invalid configuration:", err)
		os.Exit(1)
	}

	grid, renderer, err := initializeGame(config)
	if err != nil {
		fmt.Println("Failed to initialize grid:", err)
		os.Exit(1)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d := driver.New(grid, schedule.Ticker{}, config.Period())
	reason, err := runGame(ctx, d, renderer, config)
	if err != nil {
		fmt.Println("Game loop failed:", err)
	}
	displayFinalStats(reason, d.Stats())
}
