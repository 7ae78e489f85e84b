package viz

import (
	"fmt"
	"io"
	"math/cmplx"

	"github.com/guptarohit/asciigraph"
)

// TerminalRenderer draws diagnostics as text. With Compact set, each mode is
// a single sparkline instead of a small plot.
type TerminalRenderer struct {
	out     io.Writer
	Width   int
	Height  int
	Compact bool
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{
		out:    out,
		Width:  80,
		Height: 10,
	}
}

func (r *TerminalRenderer) Render(d *Diagnostics) error {
	if _, err := fmt.Fprintln(r.out, HeaderStyle.Render("oscillatory modes")); err != nil {
		return err
	}

	for _, m := range d.Modes {
		caption := fmt.Sprintf("mode %d  |λ|=%.5f  ϕ=%.4f  δ=%.3f",
			m.Index, cmplx.Abs(m.Eigenvalue), cmplx.Phase(m.Eigenvalue), m.Phase)

		var block string
		if r.Compact {
			block = fmt.Sprintf("%s  %s", SparklineChart(m.Samples, r.Width), Subtle.Render(caption))
		} else {
			block = asciigraph.Plot(m.Samples,
				asciigraph.Height(3),
				asciigraph.Width(r.Width),
				asciigraph.Caption(caption),
			)
		}
		if _, err := fmt.Fprintln(r.out, block); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(r.out, Separator(r.Width)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.out, HeaderStyle.Render(fmt.Sprintf("free response from e_%d", d.KickIndex))); err != nil {
		return err
	}

	if len(d.Outputs) > 0 {
		graph := asciigraph.Plot(d.Window(0),
			asciigraph.Height(r.Height),
			asciigraph.Width(r.Width),
			asciigraph.LowerBound(d.OutputLimits[0]),
			asciigraph.UpperBound(d.OutputLimits[1]),
			asciigraph.Caption(fmt.Sprintf("y1 (t = 0..%d)", d.OutputWindow)),
		)
		if _, err := fmt.Fprintln(r.out, graph); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.out, "%s %s   %s %s   %s %s\n",
		MetricLabel.Render("spectral radius:"), MetricValue.Render(fmt.Sprintf("%.6f", d.SpectralRadius)),
		MetricLabel.Render("decay:"), MetricValue.Render(fmt.Sprintf("%.4g", d.Decay)),
		MetricLabel.Render("dominant ω:"), MetricValue.Render(fmt.Sprintf("%.4f rad/step", d.DominantFrequency)),
	)
	return err
}
