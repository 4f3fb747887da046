// Package report renders the end-of-run summary for headless mode
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/led-swarm/event"
	"github.com/lixenwraith/led-swarm/status"
)

const (
	graphWidth  = 60
	graphHeight = 8
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	stuckStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// Tracker samples capture progress each tick and listens for completion
type Tracker struct {
	progress    []float64
	active      []float64
	completedAt time.Duration
	completed   bool
	seed        uint64
}

// NewTracker creates a tracker for a run with the given seed
func NewTracker(seed uint64) *Tracker {
	return &Tracker{seed: seed}
}

// Sample appends the current registry values
func (t *Tracker) Sample(reg *status.Registry) {
	t.progress = append(t.progress, 100*reg.Progress())
	t.active = append(t.active, float64(reg.Ints.Get(status.KeyActive).Load()))
}

// Samples returns the number of recorded ticks
func (t *Tracker) Samples() int {
	return len(t.progress)
}

func (t *Tracker) EventTypes() []event.EventType {
	return []event.EventType{event.EventComplete}
}

func (t *Tracker) HandleEvent(ev event.Event) {
	if ev.Type == event.EventComplete && !t.completed {
		t.completed = true
		t.completedAt = ev.Elapsed
	}
}

// Completed returns the elapsed time at completion, if reached
func (t *Tracker) Completed() (time.Duration, bool) {
	return t.completedAt, t.completed
}

// Summary renders a boxed run report with a capture-progress plot
func (t *Tracker) Summary(reg *status.Registry) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("LED SWARM") + "\n")

	if t.completed {
		s.WriteString(doneStyle.Render(fmt.Sprintf("COMPLETE in %.1fs", t.completedAt.Seconds())) + "\n\n")
	} else {
		s.WriteString(stuckStyle.Render("INCOMPLETE") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Seed", fmt.Sprintf("%d", t.seed))
	row("Captured", fmt.Sprintf("%d/%d (%.1f%%)",
		reg.Ints.Get(status.KeyCaptured).Load(),
		reg.Ints.Get(status.KeyTarget).Load(),
		100*reg.Progress()))
	row("Waves", fmt.Sprintf("%d", reg.Ints.Get(status.KeyWaves).Load()))
	row("Spawned", fmt.Sprintf("%d", reg.Ints.Get(status.KeySpawned).Load()))
	row("Frames", fmt.Sprintf("%d", reg.Ints.Get(status.KeyFrame).Load()))
	row("Elapsed", fmt.Sprintf("%.2fs", reg.Floats.Get(status.KeyElapsed).Get()))

	if len(t.progress) > 1 {
		chart := asciigraph.PlotMany(
			[][]float64{downsample(t.progress, graphWidth), downsample(t.active, graphWidth)},
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Blue),
			asciigraph.Caption("capture % (green) / active units (blue)"),
		)
		s.WriteString(graphStyle.Render(chart))
	}

	return boxStyle.Render(s.String())
}

// downsample keeps the last value of each bucket so the final point is exact
func downsample(xs []float64, n int) []float64 {
	if len(xs) <= n {
		return xs
	}
	out := make([]float64, n)
	for i := range out {
		j := (i+1)*len(xs)/n - 1
		out[i] = xs[j]
	}
	return out
}
