package viz

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	ModesFile   = "modes.png"
	OutputsFile = "outputs.png"
)

// PNGRenderer writes ModesFile and OutputsFile into Dir.
type PNGRenderer struct {
	Dir string
	DPI int
}

func NewPNGRenderer(dir string) *PNGRenderer {
	return &PNGRenderer{Dir: dir, DPI: 96}
}

func (r *PNGRenderer) Render(d *Diagnostics) error {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return err
	}
	if err := r.renderModes(d); err != nil {
		return fmt.Errorf("modes plot: %w", err)
	}
	if err := r.renderOutputs(d); err != nil {
		return fmt.Errorf("outputs plot: %w", err)
	}
	return nil
}

// renderModes stacks one subplot per mode on a shared time axis with hidden
// y ticks.
func (r *PNGRenderer) renderModes(d *Diagnostics) error {
	if len(d.Modes) == 0 {
		return nil
	}

	plots := make([][]*plot.Plot, len(d.Modes))
	for i, m := range d.Modes {
		p := plot.New()
		line, err := plotter.NewLine(series(m.Samples))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)

		p.X.Min = 0
		p.X.Max = float64(d.Horizon)
		p.Y.Tick.Marker = plot.ConstantTicks{}
		if i == len(d.Modes)-1 {
			p.X.Label.Text = "Time (s)"
		} else {
			p.X.Tick.Marker = plot.ConstantTicks{}
		}
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.NewWith(
		vgimg.UseWH(10*vg.Inch, 10*vg.Inch),
		vgimg.UseDPI(r.DPI),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: len(plots), Cols: 1}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	return writePNG(img, filepath.Join(r.Dir, ModesFile))
}

func (r *PNGRenderer) renderOutputs(d *Diagnostics) error {
	if len(d.Outputs) == 0 {
		return nil
	}

	p := plot.New()
	line, err := plotter.NewLine(series(d.Window(0)))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	p.X.Min = 0
	p.X.Max = float64(d.OutputWindow)
	p.Y.Min = d.OutputLimits[0]
	p.Y.Max = d.OutputLimits[1]
	p.X.Label.Text = "Time (s)"

	img := vgimg.NewWith(
		vgimg.UseWH(10*vg.Inch, 4*vg.Inch),
		vgimg.UseDPI(r.DPI),
	)
	p.Draw(draw.New(img))

	return writePNG(img, filepath.Join(r.Dir, OutputsFile))
}

func series(ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(i)
		pts[i].Y = y
	}
	return pts
}

func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
