// Package modalsys generates random, stable, oscillatory discrete-time linear
// systems x[t+1] = A x[t], y[t] = C x[t] for demonstrations and plots.
//
//	sys, err := modalsys.Generate(ctx, nil)
//	// sys.A is 16x16, sys.B is 16x2, sys.C is 2x16, sys.N == 16
//
// Pass a [Renderer] such as [NewTerminalRenderer] to also get diagnostic
// plots of the individual modes and of the free response.
package modalsys

import (
	"context"
	"io"

	"github.com/san-kum/modalsys/internal/config"
	"github.com/san-kum/modalsys/internal/dynamo"
	"github.com/san-kum/modalsys/internal/modal"
	"github.com/san-kum/modalsys/internal/viz"
)

type (
	System      = dynamo.System
	Mode        = dynamo.Mode
	Config      = config.Config
	Generator   = modal.Generator
	Option      = modal.Option
	Renderer    = viz.Renderer
	RenderFunc  = viz.RenderFunc
	Diagnostics = viz.Diagnostics
)

var (
	ErrParameterBounds   = dynamo.ErrParameterBounds
	ErrDimensionMismatch = dynamo.ErrDimensionMismatch
	ErrUnstable          = dynamo.ErrUnstable
	ErrNumerical         = dynamo.ErrNumerical
)

var (
	WithRenderer = modal.WithRenderer
	WithLogger   = modal.WithLogger
)

// Generate returns the system for the default parameters and seed 1.
// A nil renderer skips diagnostics.
func Generate(ctx context.Context, r Renderer) (*System, error) {
	return modal.Generate(ctx, r)
}

func New(cfg *Config, opts ...Option) *Generator {
	return modal.New(cfg, opts...)
}

func DefaultConfig() *Config { return config.DefaultConfig() }

func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// Preset returns a copy of a named parameter set, or nil.
func Preset(name string) *Config { return config.GetPreset(name) }

func NewTerminalRenderer(out io.Writer) *viz.TerminalRenderer {
	return viz.NewTerminalRenderer(out)
}

func NewPNGRenderer(dir string) *viz.PNGRenderer {
	return viz.NewPNGRenderer(dir)
}
