// Package tui is an interactive terminal front end: keyboard controls for
// start, stop, step and randomize, and mouse drag editing of cells.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol/driver"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/schedule"
	"github.com/sheikhrachel/go-gol/utils"
)

const frameInterval = 16 * time.Millisecond

const helpText = "enter start/stop  n step  r randomize  c clear  q quit"

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)

// App wires a driver to a tcell screen. All driver calls happen on the
// goroutine running Run.
type App struct {
	screen   tcell.Screen
	renderer *ScreenRenderer
	sched    *schedule.FixedStep
	driver   *driver.Driver
	density  float64

	brush  *driver.Brush
	steady <-chan struct{}
	status string
	last   model.StepResult
}

// New builds an App for config on an initialised screen
func New(screen tcell.Screen, config utils.Config) (*App, error) {
	renderer := NewScreenRenderer(screen)
	grid, err := model.NewGrid(config.Width, config.Height, renderer)
	if err != nil {
		return nil, err
	}
	grid.SetSeed(config.EffectiveSeed())
	if config.SeedMode != utils.SeedModeEmpty {
		if err = grid.Randomize(config.RandomDensity); err != nil {
			return nil, err
		}
	}

	sched := schedule.NewFixedStep()
	a := &App{
		screen:   screen,
		renderer: renderer,
		sched:    sched,
		driver:   driver.New(grid, sched, config.Period()),
		density:  config.RandomDensity,
		status:   "idle",
	}
	a.brush = driver.NewBrush(a.driver)
	a.driver.SetStepHook(func(res model.StepResult, _ utils.Stats) { a.last = res })
	return a, nil
}

// Run processes input and scheduled steps until ctx is done or the user quits
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			a.driver.Stop()
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handle(ev) {
				a.driver.Stop()
				return nil
			}
		case <-frame.C:
			a.sched.Poll()
		}
		a.checkSteady()
		a.draw()
	}
}

// handle reacts to one event and reports whether the app should keep running
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.toggleRun()
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		a.toggleRun()
	case 'n':
		a.steady = nil
		a.last = a.driver.SingleStep()
		a.status = fmt.Sprintf("stepped: %d changed", a.last.Changed)
	case 'r':
		a.steady = nil
		if err := a.driver.RandomizeNow(a.density); err != nil {
			a.status = err.Error()
			break
		}
		a.status = "randomized"
	case 'c':
		if a.driver.State() == driver.Running {
			a.status = "stop before clearing"
			break
		}
		w, h := a.driver.Size()
		if err := a.driver.Resize(w, h); err != nil {
			a.status = err.Error()
			break
		}
		a.status = "cleared"
	}
	return true
}

func (a *App) toggleRun() {
	if a.driver.State() == driver.Running {
		a.driver.Stop()
		a.steady = nil
		a.status = "stopped"
		return
	}
	a.steady = a.driver.Start()
	a.status = "running"
}

// handleMouse maps button-one presses and drags onto the brush
func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		a.brush.Release()
		return
	}

	x, y, ok := a.renderer.cellAt(ev.Position())
	if !ok {
		return
	}
	a.brush.Press(x, y)
}

// checkSteady reports a finished run
func (a *App) checkSteady() {
	if a.steady == nil {
		return
	}
	select {
	case <-a.steady:
		a.steady = nil
		a.status = fmt.Sprintf("steady state at generation %d", a.last.Generation)
	default:
	}
}

func (a *App) draw() {
	line := fmt.Sprintf("gen %d  alive %d  %s  |  %s", a.last.Generation, a.last.Population, a.status, helpText)
	w, _ := a.screen.Size()
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		a.screen.SetContent(col, 0, r, nil, statusStyle)
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, 0, ' ', nil, tcell.StyleDefault)
	}
	a.screen.Show()
}
