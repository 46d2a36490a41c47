// Package driver runs a grid through repeated generations on a fixed period
// and stops itself once a generation changes nothing.
package driver

import (
	"sync"
	"time"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/schedule"
	"github.com/sheikhrachel/go-gol/utils"
)

// DefaultPeriod is the time between generations while running
const DefaultPeriod = 500 * time.Millisecond

// State of the driver
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Driver owns a grid and the engine stepping it. All methods are safe for
// concurrent use; scheduled steps and direct calls are serialised.
type Driver struct {
	mu sync.Mutex

	grid   *model.Grid
	engine *model.StepEngine
	sched  schedule.Scheduler
	period time.Duration

	state  State
	cancel func()
	epoch  uint64
	steady chan struct{}

	stats    *utils.Stats
	lastStep time.Time
	hook     func(model.StepResult, utils.Stats)
}

// New returns an idle driver for grid. A non-positive period selects
// DefaultPeriod.
func New(grid *model.Grid, sched schedule.Scheduler, period time.Duration) *Driver {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Driver{
		grid:   grid,
		engine: model.NewStepEngine(),
		sched:  sched,
		period: period,
		stats:  utils.NewStats(),
	}
}

// SetStepHook registers fn to be called after every step with the step result
// and updated stats. fn runs with the driver lock held and must not call back
// into the driver.
func (d *Driver) SetStepHook(fn func(model.StepResult, utils.Stats)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hook = fn
}

// State returns the current driver state
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Stats returns a copy of the running statistics
func (d *Driver) Stats() utils.Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.stats
}

// Start begins stepping. The first step runs immediately; the returned
// channel is closed once a step changes no cell, after which the driver is
// idle again. Calling Start while running returns the current run's channel.
// Stop does not close the channel.
func (d *Driver) Start() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Running {
		return d.steady
	}

	d.state = Running
	d.epoch++
	d.steady = make(chan struct{})
	steady := d.steady

	if d.step().Steady() {
		d.finishLocked()
		return steady
	}

	epoch := d.epoch
	d.cancel = d.sched.Every(d.period, func() { d.tick(epoch) })
	return steady
}

func (d *Driver) tick(epoch uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// A Stop (or a Stop followed by a new Start) won the lock first.
	if d.state != Running || d.epoch != epoch {
		return
	}
	if d.step().Steady() {
		d.finishLocked()
	}
}

// finishLocked stops the run and signals steady state
func (d *Driver) finishLocked() {
	d.stopLocked()
	close(d.steady)
}

// Stop cancels the running loop. No scheduled step runs after Stop returns.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Driver) stopLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.state = Idle
}

// SingleStep stops any running loop and advances exactly one generation
func (d *Driver) SingleStep() model.StepResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	return d.step()
}

func (d *Driver) step() model.StepResult {
	res := d.engine.Step(d.grid)

	now := time.Now()
	var elapsed time.Duration
	if !d.lastStep.IsZero() {
		elapsed = now.Sub(d.lastStep)
	}
	d.lastStep = now
	d.stats.Update(res.Generation, res.Population, res.Changed, elapsed)

	if d.hook != nil {
		d.hook(res, *d.stats)
	}
	return res
}

// RandomizeNow stops any running loop and reseeds the grid
func (d *Driver) RandomizeNow(probability float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	return d.grid.Randomize(probability)
}

// Resize reallocates the grid as all dead. It is ignored while running.
func (d *Driver) Resize(width, height int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Running {
		return nil
	}
	if err := d.grid.Init(width, height); err != nil {
		return err
	}
	d.stats = utils.NewStats()
	d.lastStep = time.Time{}
	return nil
}

// Size returns the grid dimensions
func (d *Driver) Size() (width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.grid.GetWidth(), d.grid.GetHeight()
}

// Get returns the state of a cell
func (d *Driver) Get(x, y int) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.grid.Get(x, y)
}

// Set writes a cell. Edits are ignored while running.
func (d *Driver) Set(x, y int, alive bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Running {
		return nil
	}
	return d.grid.Set(x, y, alive)
}

// Toggle flips a cell and returns its new value. Edits are ignored while
// running, in which case the current value is returned.
func (d *Driver) Toggle(x, y int) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	alive, err := d.grid.Get(x, y)
	if err != nil || d.state == Running {
		return alive, err
	}
	return !alive, d.grid.Set(x, y, !alive)
}
