package viz

// Renderer consumes diagnostics. Implementations must not retain or modify
// the slices they are given.
type Renderer interface {
	Render(d *Diagnostics) error
}

type RenderFunc func(d *Diagnostics) error

func (f RenderFunc) Render(d *Diagnostics) error { return f(d) }

// ModeTrace is the standalone trajectory Re(λ^t e^(iδ)) of one mode.
type ModeTrace struct {
	Index      int
	Eigenvalue complex128
	Phase      float64
	Samples    []float64
}

type Diagnostics struct {
	Modes   []ModeTrace
	Horizon int

	// Outputs[i] is channel y_i over Horizon steps of the free response
	// from KickIndex.
	Outputs      [][]float64
	KickIndex    int
	OutputWindow int
	OutputLimits [2]float64

	SpectralRadius    float64
	Decay             float64
	DominantFrequency float64
}

// Window returns channel i truncated to OutputWindow samples.
func (d *Diagnostics) Window(i int) []float64 {
	y := d.Outputs[i]
	if d.OutputWindow < len(y) {
		return y[:d.OutputWindow]
	}
	return y
}
