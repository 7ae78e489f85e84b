package modal_test

import (
	"bytes"
	"context"
	"errors"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/modalsys/internal/config"
	"github.com/san-kum/modalsys/internal/dynamo"
	"github.com/san-kum/modalsys/internal/metrics"
	"github.com/san-kum/modalsys/internal/modal"
	"github.com/san-kum/modalsys/internal/viz"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
)

// matchSpectrum pairs every expected eigenvalue with a distinct computed one
// within tol.
func matchSpectrum(got, want []complex128, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !used[i] && cmplx.Abs(g-w) < tol {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var _ = Describe("Generate", func() {
	var (
		ctx context.Context
		sys *dynamo.System
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		sys, err = modal.Generate(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns matrices of the expected shapes", func() {
		Expect(sys.N).To(Equal(16))

		r, c := sys.A.Dims()
		Expect([]int{r, c}).To(Equal([]int{16, 16}))
		r, c = sys.B.Dims()
		Expect([]int{r, c}).To(Equal([]int{16, 2}))
		r, c = sys.C.Dims()
		Expect([]int{r, c}).To(Equal([]int{2, 16}))
	})

	It("produces a Schur-stable state matrix", func() {
		vals, err := metrics.Eigenvalues(sys.A)
		Expect(err).NotTo(HaveOccurred())
		Expect(vals).To(HaveLen(16))
		for _, v := range vals {
			Expect(cmplx.Abs(v)).To(BeNumerically("<", 1))
		}
	})

	It("keeps the modal spectrum after rotation", func() {
		vals, err := metrics.Eigenvalues(sys.A)
		Expect(err).NotTo(HaveOccurred())
		Expect(matchSpectrum(vals, sys.Eigenvalues(), 1e-8)).To(BeTrue())
	})

	It("uses an orthogonal rotation", func() {
		Expect(metrics.OrthogonalityError(sys.Rotation)).To(BeNumerically("<", 1e-9))
	})

	It("builds Λ whose eigenvalues are exactly the modes and their conjugates", func() {
		vals, err := metrics.Eigenvalues(sys.Modal)
		Expect(err).NotTo(HaveOccurred())
		Expect(vals).To(HaveLen(sys.N))
		Expect(matchSpectrum(vals, sys.Eigenvalues(), 1e-12)).To(BeTrue())
	})

	It("samples magnitudes close to but below one", func() {
		Expect(sys.Modes).To(HaveLen(8))
		for _, m := range sys.Modes {
			Expect(m.Magnitude).To(BeNumerically(">", 0.99))
			Expect(m.Magnitude).To(BeNumerically("<", 1.0))
		}
	})

	It("hides the block-diagonal structure", func() {
		Expect(sys.A.At(0, 15)).NotTo(BeZero())
		Expect(sys.A.At(15, 0)).NotTo(BeZero())
	})

	It("draws C from [0,1)", func() {
		r, c := sys.C.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				Expect(sys.C.At(i, j)).To(And(BeNumerically(">=", 0), BeNumerically("<", 1)))
			}
		}
	})

	It("is deterministic across calls", func() {
		again, err := modal.Generate(ctx, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(mat.Equal(sys.A, again.A)).To(BeTrue())
		Expect(mat.Equal(sys.B, again.B)).To(BeTrue())
		Expect(mat.Equal(sys.C, again.C)).To(BeTrue())
		Expect(again.N).To(Equal(sys.N))
	})

	Context("with a renderer", func() {
		It("renders diagnostics without changing the system", func() {
			var seen []*viz.Diagnostics
			r := viz.RenderFunc(func(d *viz.Diagnostics) error {
				seen = append(seen, d)
				return nil
			})

			shown, err := modal.Generate(ctx, r)
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(HaveLen(1))

			Expect(mat.Equal(sys.A, shown.A)).To(BeTrue())
			Expect(mat.Equal(sys.B, shown.B)).To(BeTrue())
			Expect(mat.Equal(sys.C, shown.C)).To(BeTrue())
			Expect(shown.N).To(Equal(sys.N))

			d := seen[0]
			Expect(d.Modes).To(HaveLen(8))
			Expect(d.Horizon).To(Equal(1000))
			for _, m := range d.Modes {
				Expect(m.Samples).To(HaveLen(1000))
			}
			Expect(d.Outputs).To(HaveLen(2))
			Expect(d.Outputs[0]).To(HaveLen(1000))
			Expect(d.Window(0)).To(HaveLen(350))
			Expect(d.KickIndex).To(Equal(4))
			Expect(d.OutputLimits).To(Equal([2]float64{-1, 1}))
			Expect(d.SpectralRadius).To(BeNumerically("<", 1))
		})

		It("renders to a terminal without error", func() {
			var buf bytes.Buffer
			_, err := modal.Generate(ctx, viz.NewTerminalRenderer(&buf))
			Expect(err).NotTo(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring("mode 7"))
		})

		It("surfaces renderer failures", func() {
			boom := errors.New("display unavailable")
			_, err := modal.Generate(ctx, viz.RenderFunc(func(*viz.Diagnostics) error { return boom }))
			Expect(err).To(MatchError(boom))

			var genErr *dynamo.GenerateError
			Expect(errors.As(err, &genErr)).To(BeTrue())
			Expect(genErr.Stage).To(Equal("render"))
		})
	})

	Context("with a custom config", func() {
		It("respects the configured dimensions", func() {
			cfg := config.GetPreset("wide")
			g := modal.New(cfg)

			wide, err := g.Generate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(wide.N).To(Equal(32))
			Expect(wide.InputDim()).To(Equal(4))
			Expect(wide.OutputDim()).To(Equal(4))

			stable, err := metrics.IsSchurStable(wide.A)
			Expect(err).NotTo(HaveOccurred())
			Expect(stable).To(BeTrue())
		})

		It("changes the matrices with the seed", func() {
			cfg := config.DefaultConfig()
			cfg.Seed = 7
			other, err := modal.New(cfg).Generate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(mat.Equal(sys.A, other.A)).To(BeFalse())
		})

		It("rejects invalid parameters", func() {
			cfg := config.DefaultConfig()
			cfg.StateDim = 15
			_, err := modal.New(cfg).Generate(ctx)
			Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue())
		})

		It("logs through the injected logger", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			_, err := modal.New(config.DefaultConfig(), modal.WithLogger(zap.New(core))).Generate(ctx)
			Expect(err).NotTo(HaveOccurred())

			entries := logs.FilterMessage("generated").All()
			Expect(entries).To(HaveLen(1))
			fields := entries[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("seed", int64(1)))
			Expect(fields).To(HaveKeyWithValue("n", int64(16)))
			Expect(fields).To(HaveKeyWithValue("modes", int64(8)))
		})

		It("rejects a missing config instead of panicking", func() {
			_, err := modal.New(nil).Generate(ctx)
			Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue())

			var genErr *dynamo.GenerateError
			Expect(errors.As(err, &genErr)).To(BeTrue())
			Expect(genErr.Stage).To(Equal("config"))
		})
	})

	Describe("Diagnose", func() {
		var small *dynamo.System

		BeforeEach(func() {
			var err error
			small, err = modal.New(config.GetPreset("small")).Generate(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("rejects diagnostics that do not fit the system",
			func(modify func(*config.DiagnosticsConfig), want error) {
				cfg := config.DefaultConfig().Diagnostics
				cfg.KickIndex = 1
				modify(&cfg)

				d, err := modal.Diagnose(ctx, small, cfg)
				Expect(d).To(BeNil())
				Expect(errors.Is(err, want)).To(BeTrue())
			},
			Entry("kick index equal to N", func(c *config.DiagnosticsConfig) { c.KickIndex = 4 }, dynamo.ErrDimensionMismatch),
			Entry("negative kick index", func(c *config.DiagnosticsConfig) { c.KickIndex = -1 }, dynamo.ErrDimensionMismatch),
			Entry("zero horizon", func(c *config.DiagnosticsConfig) { c.Horizon = 0 }, dynamo.ErrParameterBounds),
			Entry("negative horizon", func(c *config.DiagnosticsConfig) { c.Horizon = -10 }, dynamo.ErrParameterBounds),
		)

		It("reports the decay of the free response", func() {
			cfg := config.GetPreset("small").Diagnostics
			d, err := modal.Diagnose(ctx, small, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Decay).To(BeNumerically(">", 0))
			Expect(d.Decay).To(BeNumerically("<", 1))
		})
	})
})
