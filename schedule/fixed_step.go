package schedule

import "time"

type fixedStepTask struct {
	fn          func()
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	cancelled   bool
}

// FixedStep is a Scheduler for frame-driven loops: nothing runs on its own,
// callbacks fire from Poll once enough time has accumulated. Everything
// happens on the goroutine that calls Poll.
type FixedStep struct {
	now   func() time.Time
	tasks []*fixedStepTask
}

// NewFixedStep returns a FixedStep using the wall clock
func NewFixedStep() *FixedStep {
	return NewFixedStepWithClock(time.Now)
}

// NewFixedStepWithClock returns a FixedStep reading time from now
func NewFixedStepWithClock(now func() time.Time) *FixedStep {
	return &FixedStep{now: now}
}

// Every implements Scheduler
func (f *FixedStep) Every(period time.Duration, fn func()) func() {
	if period <= 0 {
		period = time.Second / 60
	}
	task := &fixedStepTask{fn: fn, step: period, last: f.now()}
	f.tasks = append(f.tasks, task)
	return func() { task.cancelled = true }
}

// Poll fires each task at most once if its period has elapsed since it last
// fired, and drops cancelled tasks
func (f *FixedStep) Poll() {
	now := f.now()
	for _, task := range f.tasks {
		if task.cancelled {
			continue
		}
		task.accumulator += now.Sub(task.last)
		task.last = now
		if task.accumulator >= task.step {
			task.accumulator -= task.step
			// Don't build up a backlog after a long stall.
			if task.accumulator > task.step {
				task.accumulator = task.step
			}
			task.fn()
		}
	}

	live := f.tasks[:0]
	for _, task := range f.tasks {
		if !task.cancelled {
			live = append(live, task)
		}
	}
	clear(f.tasks[len(live):])
	f.tasks = live
}

// Pending returns the number of active tasks
func (f *FixedStep) Pending() int {
	n := 0
	for _, task := range f.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}
