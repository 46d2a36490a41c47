//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-gol/gui"
	"github.com/sheikhrachel/go-gol/utils"
)

func main() {
	config := utils.DefaultConfig()
	config.Bind(flag.CommandLine)
	flag.Parse()
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	game, err := gui.New(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("go-gol")
	ebiten.SetWindowSize(config.Width*config.Scale, config.Height*config.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
