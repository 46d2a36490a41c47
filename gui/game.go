//go:build ebiten

package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-gol/driver"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/schedule"
	"github.com/sheikhrachel/go-gol/utils"
)

// Game adapts a driver to the ebiten.Game interface. Scheduled steps are
// polled from Update, so everything runs on ebiten's update goroutine.
type Game struct {
	driver  *driver.Driver
	sched   *schedule.FixedStep
	pixels  *PixelBuffer
	brush   *driver.Brush
	img     *ebiten.Image
	scale   int
	density float64

	steady <-chan struct{}
	last   model.StepResult
	status string
}

// New constructs a Game for the provided configuration
func New(config utils.Config) (*Game, error) {
	pixels := NewPixelBuffer(color.White, color.Black)
	grid, err := model.NewGrid(config.Width, config.Height, pixels)
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
	g := &Game{
		driver:  driver.New(grid, sched, config.Period()),
		sched:   sched,
		pixels:  pixels,
		scale:   config.Scale,
		density: config.RandomDensity,
		status:  "idle",
	}
	g.brush = driver.NewBrush(g.driver)
	g.driver.SetStepHook(func(res model.StepResult, _ utils.Stats) { g.last = res })
	return g, nil
}

// Update handles per-frame input and runs due steps
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.toggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.steady = nil
		g.driver.SingleStep()
		g.status = fmt.Sprintf("stepped: %d changed", g.last.Changed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.steady = nil
		if err := g.driver.RandomizeNow(g.density); err != nil {
			return err
		}
		g.status = "randomized"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.driver.State() == driver.Idle {
		w, h := g.driver.Size()
		if err := g.driver.Resize(w, h); err != nil {
			return err
		}
		g.status = "cleared"
	}

	g.updateMouse()
	g.sched.Poll()

	if g.steady != nil {
		select {
		case <-g.steady:
			g.steady = nil
			g.status = fmt.Sprintf("steady state at generation %d", g.last.Generation)
		default:
		}
	}
	return nil
}

func (g *Game) toggleRun() {
	if g.driver.State() == driver.Running {
		g.driver.Stop()
		g.steady = nil
		g.status = "stopped"
		return
	}
	g.steady = g.driver.Start()
	g.status = "running"
}

func (g *Game) updateMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.brush.Release()
		return
	}
	cx, cy := ebiten.CursorPosition()
	if cx < 0 || cy < 0 {
		return
	}
	x, y := cx/g.scale, cy/g.scale
	w, h := g.pixels.Size()
	if x >= w || y >= h {
		return
	}
	g.brush.Press(x, y)
}

// Draw renders the current grid and the status line
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.pixels.Size()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = ebiten.NewImage(w, h)
		g.img.WritePixels(g.pixels.Pix())
	} else if g.pixels.Dirty() {
		g.img.WritePixels(g.pixels.Pix())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  alive %d  %s\nspace run  n step  r random  c clear",
		g.last.Generation, g.last.Population, g.status))
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.pixels.Size()
	return w * g.scale, h * g.scale
}
