// Package progress renders a live status line for long-running maintenance
// runs. The main flow publishes status updates over a one-way channel; a
// single worker goroutine owns the terminal line and never sits on the
// critical path.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Status is one published snapshot of the run's current activity.
type Status struct {
	Phase  string
	Detail string
}

// stopTimeout bounds the shutdown wait so a stuck writer can never hang the
// main flow.
const stopTimeout = 2 * time.Second

var nowFunc = time.Now

// Reporter owns the status line. Publish is safe to call from the main flow
// at any time, including after Stop.
type Reporter struct {
	out        io.Writer
	useSpinner bool

	updates  chan Status
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once

	started       time.Time
	current       Status
	lastPrinted   string
	spinnerFrames []string
	spinnerIndex  int
	rendered      bool
}

// NewReporter returns a reporter writing to out. useSpinner selects the
// in-place animated line; without it each phase change prints once.
func NewReporter(out io.Writer, useSpinner bool) *Reporter {
	return &Reporter{
		out:           out,
		useSpinner:    useSpinner,
		updates:       make(chan Status, 16),
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
		spinnerFrames: []string{"|", "/", "-", "\\"},
	}
}

// Start launches the display worker.
func (r *Reporter) Start() {
	r.started = nowFunc()
	go r.run()
}

// Publish sends a status snapshot to the worker without blocking. Updates
// are dropped when the worker is saturated or already stopped.
func (r *Reporter) Publish(status Status) {
	select {
	case <-r.doneCh:
		return
	default:
	}
	select {
	case r.updates <- status:
	default:
	}
}

// Stop signals the worker, waits for it to clear the line, and returns.
// The wait is bounded; Stop never blocks the main flow indefinitely.
func (r *Reporter) Stop() {
	if r.started.IsZero() {
		return
	}
	r.stopOnce.Do(func() { close(r.stopCh) })
	select {
	case <-r.doneCh:
	case <-time.After(stopTimeout):
	}
}

func (r *Reporter) run() {
	defer close(r.doneCh)

	var ticker *time.Ticker
	var tickCh <-chan time.Time
	if r.useSpinner {
		ticker = time.NewTicker(250 * time.Millisecond)
		tickCh = ticker.C
		defer ticker.Stop()
	}

	for {
		select {
		case status := <-r.updates:
			r.current = status
			if r.useSpinner {
				r.render()
				continue
			}
			r.printTransition(status)
		case <-tickCh:
			r.spinnerIndex = (r.spinnerIndex + 1) % len(r.spinnerFrames)
			r.render()
		case <-r.stopCh:
			r.drain()
			r.clearLine()
			return
		}
	}
}

// drain applies any updates still queued at shutdown so plain-output mode
// does not lose the final phase line.
func (r *Reporter) drain() {
	for {
		select {
		case status := <-r.updates:
			r.current = status
			if !r.useSpinner {
				r.printTransition(status)
			}
		default:
			return
		}
	}
}

func (r *Reporter) render() {
	if r.current.Phase == "" {
		return
	}
	line := fmt.Sprintf("  %s %s (%s elapsed)",
		color.CyanString(r.spinnerFrames[r.spinnerIndex]),
		r.statusText(), formatElapsed(nowFunc().Sub(r.started)))
	_, _ = fmt.Fprintf(r.out, "\r\x1b[2K%s", line)
	r.rendered = true
}

// printTransition prints a phase line once per distinct phase.
func (r *Reporter) printTransition(status Status) {
	if status.Phase == "" || status.Phase == r.lastPrinted {
		return
	}
	r.lastPrinted = status.Phase
	_, _ = fmt.Fprintf(r.out, "  %s\n", status.Phase)
}

// clearLine restores the terminal line the spinner occupied.
func (r *Reporter) clearLine() {
	if !r.rendered {
		return
	}
	_, _ = fmt.Fprint(r.out, "\r\x1b[2K")
}

func (r *Reporter) statusText() string {
	if r.current.Detail == "" {
		return r.current.Phase
	}
	return fmt.Sprintf("%s: %s", r.current.Phase, r.current.Detail)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	if minutes == 0 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm%02ds", minutes, seconds)
}

// Discard is an unstarted reporter that renders nothing; callers can publish
// to it unconditionally and Stop is a no-op.
func Discard() *Reporter {
	return NewReporter(io.Discard, false)
}
