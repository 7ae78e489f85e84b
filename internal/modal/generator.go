package modal

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/san-kum/modalsys/internal/analysis"
	"github.com/san-kum/modalsys/internal/config"
	"github.com/san-kum/modalsys/internal/dynamo"
	"github.com/san-kum/modalsys/internal/metrics"
	"github.com/san-kum/modalsys/internal/sim"
	"github.com/san-kum/modalsys/internal/viz"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

type Generator struct {
	cfg      *config.Config
	renderer viz.Renderer
	logger   *zap.Logger
}

type Option func(*Generator)

// WithRenderer hands diagnostics to r after every successful generation.
func WithRenderer(r viz.Renderer) Option {
	return func(g *Generator) { g.renderer = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a system with the default parameters and seed 1. A nil
// renderer skips diagnostics.
func Generate(ctx context.Context, r viz.Renderer) (*dynamo.System, error) {
	var opts []Option
	if r != nil {
		opts = append(opts, WithRenderer(r))
	}
	return New(config.DefaultConfig(), opts...).Generate(ctx)
}

// Generate samples a fresh system. Each call reseeds its own generator, so
// repeated calls return identical matrices.
//
// Draw order: frequency shuffle, phases, rotation, C, B.
func (g *Generator) Generate(ctx context.Context) (*dynamo.System, error) {
	if g.cfg == nil {
		return nil, &dynamo.GenerateError{Stage: "config", Wrapped: fmt.Errorf("%w: nil config", dynamo.ErrParameterBounds)}
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, &dynamo.GenerateError{Stage: "config", Wrapped: fmt.Errorf("%w: %v", dynamo.ErrParameterBounds, err)}
	}

	n := g.cfg.StateDim
	rng := rand.New(rand.NewPCG(uint64(g.cfg.Seed), 0))

	modes := SampleModes(rng, g.cfg)
	lam := BlockDiag(modes)

	q, err := RandomOrthogonal(rng, n)
	if err != nil {
		return nil, &dynamo.GenerateError{Stage: "rotation", Wrapped: err}
	}

	var tmp, a mat.Dense
	tmp.Mul(q.T(), lam)
	a.Mul(&tmp, q)

	stable, err := metrics.IsSchurStable(&a)
	if err != nil {
		return nil, &dynamo.GenerateError{Stage: "stability", Wrapped: err}
	}
	if !stable {
		return nil, &dynamo.GenerateError{Stage: "stability", Wrapped: dynamo.ErrUnstable}
	}

	c := UniformMatrix(rng, g.cfg.OutputDim, n)
	b := NormalMatrix(rng, n, g.cfg.InputDim)

	sys := &dynamo.System{
		A:        &a,
		B:        b,
		C:        c,
		N:        n,
		Modes:    modes,
		Modal:    lam,
		Rotation: q,
	}
	g.logger.Info("generated",
		zap.Int64("seed", g.cfg.Seed),
		zap.Int("n", n),
		zap.Int("modes", len(modes)),
	)

	if g.renderer == nil {
		return sys, nil
	}

	d, err := Diagnose(ctx, sys, g.cfg.Diagnostics)
	if err != nil {
		return nil, &dynamo.GenerateError{Stage: "diagnostics", Wrapped: err}
	}
	if err := g.renderer.Render(d); err != nil {
		g.logger.Warn("render failed", zap.Error(err))
		return nil, &dynamo.GenerateError{Stage: "render", Wrapped: err}
	}
	g.logger.Info("rendered",
		zap.Int("horizon", d.Horizon),
		zap.Float64("radius", d.SpectralRadius),
		zap.Float64("decay", d.Decay),
		zap.Float64("dominant", d.DominantFrequency),
	)

	return sys, nil
}

// Diagnose collects the standalone mode trajectories and the free response
// from the kick state. It reads sys but never draws random numbers.
func Diagnose(ctx context.Context, sys *dynamo.System, cfg config.DiagnosticsConfig) (*viz.Diagnostics, error) {
	if cfg.KickIndex < 0 || cfg.KickIndex >= sys.N {
		return nil, fmt.Errorf("%w: kick index %d outside state of dimension %d", dynamo.ErrDimensionMismatch, cfg.KickIndex, sys.N)
	}
	if cfg.Horizon < 1 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %d", dynamo.ErrParameterBounds, cfg.Horizon)
	}

	traces := make([]viz.ModeTrace, len(sys.Modes))
	for i, m := range sys.Modes {
		traces[i] = viz.ModeTrace{
			Index:      i,
			Eigenvalue: m.Eigenvalue(),
			Phase:      m.Phase,
			Samples:    m.Trajectory(cfg.Horizon),
		}
	}

	decay := metrics.NewDecay()
	s := sim.New(sys)
	s.AddObserver(decay)

	result, err := s.Run(ctx, sim.Kick(sys.N, cfg.KickIndex), cfg.Horizon)
	if err != nil {
		return nil, err
	}

	outputs := make([][]float64, sys.OutputDim())
	for i := range outputs {
		outputs[i] = result.Channel(i)
	}

	radius, err := metrics.SpectralRadius(sys.A)
	if err != nil {
		return nil, err
	}

	return &viz.Diagnostics{
		Modes:             traces,
		Horizon:           cfg.Horizon,
		Outputs:           outputs,
		KickIndex:         cfg.KickIndex,
		OutputWindow:      cfg.OutputWindow,
		OutputLimits:      [2]float64{-1, 1},
		SpectralRadius:    radius,
		Decay:             decay.Value(),
		DominantFrequency: analysis.DominantFrequency(outputs[0]),
	}, nil
}
