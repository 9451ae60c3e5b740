// Package canvas is the rendering sink: it accepts a sampled curve plus a
// title and keeps the drawn frame until it is cleared or redrawn. Clearing
// an already-empty canvas is a no-op, so callers may reset unconditionally
// before every cycle.
package canvas

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/funvibe/funplot/internal/config"
)

type Canvas struct {
	height int
	width  int

	rendered string
	hasPlot  bool
}

func New(theme config.Theme) *Canvas {
	return &Canvas{height: theme.PlotHeight, width: theme.PlotWidth}
}

// Clear resets the canvas to its default empty state. Idempotent.
func (c *Canvas) Clear() {
	c.rendered = ""
	c.hasPlot = false
}

// Draw clears the canvas and renders the curve with its title. The x values
// are evenly spaced, so plotting y by index keeps the curve's shape.
// Non-finite y values become gaps rather than breaking the vertical scale.
func (c *Canvas) Draw(x, y []float64, title string) {
	c.Clear()
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return
	}

	series := make([]float64, len(y))
	finite := false
	for i, v := range y {
		if math.IsInf(v, 0) {
			series[i] = math.NaN()
			continue
		}
		series[i] = v
		if !math.IsNaN(v) {
			finite = true
		}
	}
	if !finite {
		return
	}

	c.rendered = asciigraph.Plot(series,
		asciigraph.Height(c.height),
		asciigraph.Width(c.width),
		asciigraph.Caption(title),
	)
	c.hasPlot = true
}

// HasPlot reports whether a curve is currently drawn. The UI keys its
// toolbar enabled state off this.
func (c *Canvas) HasPlot() bool { return c.hasPlot }

// View returns the rendered frame, or the empty string for a cleared canvas.
func (c *Canvas) View() string { return c.rendered }
