// Package linear provides a line-oriented progress renderer for install runs.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/ui/output"
	"go.trai.ch/packsync/internal/ui/style"
)

// Renderer implements ports.Renderer by printing one line per event.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu    sync.Mutex
	tasks map[string]*taskState // spanID -> task state
}

type taskState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer writing to w, or stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:      w,
		output: output.New(w),
		tasks:  make(map[string]*taskState),
	}
}

// OnPlanEmit prints the size of the install run.
func (r *Renderer) OnPlanEmit(packages []string, windows int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.w, "Installing %d package(s) in %d window(s)\n", len(packages), windows)
}

// OnTaskStart prints a package start message.
func (r *Renderer) OnTaskStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = &taskState{
		name:      name,
		startTime: startTime,
	}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s Installing...\n", prefix)
}

// OnTaskComplete prints the package's outcome and duration.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, outcome string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", task.name)

	switch {
	case err != nil || outcome == domain.OutcomeFailed.String():
		symbol := output.Colorize(r.output, style.Cross, string(style.Red))
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	case outcome == domain.OutcomeSkipped.String():
		symbol := output.Colorize(r.output, style.Warning, string(style.Yellow))
		_, _ = fmt.Fprintf(r.w, "%s %s Already installed\n", prefix, symbol)
	default:
		symbol := output.Colorize(r.output, style.Check, string(style.Green))
		_, _ = fmt.Fprintf(r.w, "%s %s Installed in %v\n", prefix, symbol, duration)
	}
}
