package analysis_test

import (
	"context"
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bifurc/internal/analysis"
	"github.com/san-kum/bifurc/internal/logistic"
)

func columnBits(m *analysis.Matrix, j int) []uint64 {
	col := m.Column(j)
	bits := make([]uint64, len(col))
	for i, v := range col {
		bits[i] = math.Float64bits(v)
	}
	return bits
}

var _ = Describe("Sweep", func() {
	It("converges to the fixed point at r=2", func() {
		rVals := []float64{2.0}
		stable := make([]float64, 5)
		out := analysis.NewMatrix(5, 1)

		Expect(analysis.Sweep(rVals, 0.2, 1000, stable, out)).To(Succeed())
		for i := 0; i < 5; i++ {
			Expect(out.At(i, 0)).To(BeNumerically("~", 0.5, 1e-15))
		}
	})

	It("captures straight from the seed when there is no transient", func() {
		stable := make([]float64, 3)
		out := analysis.NewMatrix(3, 1)

		Expect(analysis.Sweep([]float64{4.0}, 0.3, 0, stable, out)).To(Succeed())

		x := 0.3
		for i := 0; i < 3; i++ {
			x = 4 * x * (1 - x)
			Expect(math.Float64bits(out.At(i, 0))).To(Equal(math.Float64bits(x)))
		}
	})

	It("seeds capture with the post-transient value", func() {
		stable := make([]float64, 4)
		out := analysis.NewMatrix(4, 1)
		Expect(analysis.Sweep([]float64{3.7}, 0.01, 250, stable, out)).To(Succeed())

		want := make([]float64, 4)
		logistic.Capture(want, 3.7, logistic.Advance(250, 3.7, 0.01))
		Expect(out.Column(0)).To(Equal(want))
	})

	It("restarts every column from the same seed", func() {
		rVals := []float64{3.3, 3.3, 3.3}
		stable := make([]float64, 6)
		out := analysis.NewMatrix(6, 3)

		Expect(analysis.Sweep(rVals, 0.1, 500, stable, out)).To(Succeed())
		Expect(columnBits(out, 1)).To(Equal(columnBits(out, 0)))
		Expect(columnBits(out, 2)).To(Equal(columnBits(out, 0)))
	})

	It("keeps column 0 independent of later columns", func() {
		one := analysis.NewMatrix(8, 1)
		Expect(analysis.Sweep([]float64{3.56}, 0.01, 2000, make([]float64, 8), one)).To(Succeed())

		two := analysis.NewMatrix(8, 2)
		Expect(analysis.Sweep([]float64{3.56, 3.99}, 0.01, 2000, make([]float64, 8), two)).To(Succeed())

		Expect(columnBits(two, 0)).To(Equal(columnBits(one, 0)))
	})

	It("copies the scratch buffer by value", func() {
		stable := make([]float64, 4)
		out := analysis.NewMatrix(4, 2)

		Expect(analysis.Sweep([]float64{2.0, 3.2}, 0.2, 1000, stable, out)).To(Succeed())
		Expect(out.Column(0)).NotTo(Equal(out.Column(1)))

		for i := range stable {
			stable[i] = -1
		}
		Expect(out.At(0, 0)).To(BeNumerically("~", 0.5, 1e-15))
	})

	It("writes every column in r order", func() {
		rVals := analysis.Linspace(2.5, 3.9, 7)
		out := analysis.NewMatrix(3, len(rVals))
		for j := 0; j < out.Cols(); j++ {
			out.SetColumn(j, []float64{math.NaN(), math.NaN(), math.NaN()})
		}

		Expect(analysis.Sweep(rVals, 0.4, 100, make([]float64, 3), out)).To(Succeed())

		Expect(out.Rows()).To(Equal(3))
		Expect(out.Cols()).To(Equal(len(rVals)))
		for j, r := range rVals {
			want := make([]float64, 3)
			logistic.Capture(want, r, logistic.Advance(100, r, 0.4))
			Expect(out.Column(j)).To(Equal(want))
		}
	})

	It("stores diverging orbits untouched", func() {
		out := analysis.NewMatrix(2, 1)
		Expect(analysis.Sweep([]float64{5.0}, 0.5, 100, make([]float64, 2), out)).To(Succeed())

		v := out.At(0, 0)
		Expect(math.IsNaN(v) || math.IsInf(v, 0)).To(BeTrue())
	})

	Context("with degenerate sizes", func() {
		It("accepts no r values", func() {
			out := analysis.NewMatrix(4, 0)
			Expect(analysis.Sweep(nil, 0.5, 10, make([]float64, 4), out)).To(Succeed())
		})

		It("accepts an empty stable buffer", func() {
			out := analysis.NewMatrix(0, 3)
			Expect(analysis.Sweep([]float64{1, 2, 3}, 0.5, 10, nil, out)).To(Succeed())
			Expect(out.Column(2)).To(BeEmpty())
		})
	})

	Context("with invalid input", func() {
		It("rejects a matrix with the wrong column count", func() {
			out := analysis.NewMatrix(4, 3)
			err := analysis.Sweep([]float64{3.1, 3.2}, 0.5, 10, make([]float64, 4), out)

			Expect(err).To(MatchError(analysis.ErrShapeMismatch))
			var shapeErr *analysis.ShapeError
			Expect(err).To(BeAssignableToTypeOf(shapeErr))
		})

		It("rejects a matrix with the wrong row count without writing", func() {
			out := analysis.NewMatrix(5, 1)
			err := analysis.Sweep([]float64{3.1}, 0.5, 10, make([]float64, 4), out)

			Expect(err).To(MatchError(analysis.ErrShapeMismatch))
			Expect(out.Column(0)).To(HaveEach(0.0))
		})

		It("rejects a nil matrix", func() {
			err := analysis.Sweep([]float64{3.1}, 0.5, 10, make([]float64, 1), nil)
			Expect(err).To(MatchError(analysis.ErrNilMatrix))
		})

		It("rejects a negative transient", func() {
			out := analysis.NewMatrix(1, 1)
			err := analysis.Sweep([]float64{3.1}, 0.5, -1, make([]float64, 1), out)
			Expect(err).To(MatchError(analysis.ErrNegativeTransient))
		})
	})
})

var _ = Describe("SweepParallel", func() {
	rVals := analysis.Linspace(2.9, 4.0, 37)

	serial := func() *analysis.Matrix {
		out := analysis.NewMatrix(16, len(rVals))
		Expect(analysis.Sweep(rVals, 0.01, 3000, make([]float64, 16), out)).To(Succeed())
		return out
	}

	DescribeTable("matches the serial sweep bit for bit",
		func(workers int) {
			want := serial()
			got := analysis.NewMatrix(16, len(rVals))

			err := analysis.SweepParallel(context.Background(), rVals, 0.01, 3000, got, analysis.Options{Workers: workers})
			Expect(err).NotTo(HaveOccurred())
			for j := range rVals {
				Expect(columnBits(got, j)).To(Equal(columnBits(want, j)))
			}
		},
		Entry("default workers", 0),
		Entry("one worker", 1),
		Entry("uneven chunks", 5),
		Entry("more workers than columns", 100),
	)

	It("reports progress for every column", func() {
		var mu sync.Mutex
		calls, last, total := 0, 0, 0

		out := analysis.NewMatrix(4, len(rVals))
		err := analysis.SweepParallel(context.Background(), rVals, 0.01, 10, out, analysis.Options{
			Workers: 4,
			Progress: func(done, n int) {
				mu.Lock()
				defer mu.Unlock()
				calls++
				total = n
				if done > last {
					last = done
				}
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(len(rVals)))
		Expect(last).To(Equal(len(rVals)))
		Expect(total).To(Equal(len(rVals)))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out := analysis.NewMatrix(4, len(rVals))
		err := analysis.SweepParallel(ctx, rVals, 0.01, 10, out, analysis.Options{Workers: 2})
		Expect(err).To(MatchError(context.Canceled))
	})

	It("rejects a mismatched matrix", func() {
		out := analysis.NewMatrix(4, len(rVals)+1)
		err := analysis.SweepParallel(context.Background(), rVals, 0.01, 10, out, analysis.Options{})
		Expect(err).To(MatchError(analysis.ErrShapeMismatch))
	})

	It("returns immediately with no r values", func() {
		out := analysis.NewMatrix(4, 0)
		Expect(analysis.SweepParallel(context.Background(), nil, 0.01, 10, out, analysis.Options{})).To(Succeed())
	})
})

var _ = Describe("Run", func() {
	It("allocates a samples x steps matrix", func() {
		res, err := analysis.Run(context.Background(), analysis.Params{
			RMin: 2.8, RMax: 4.0, RSteps: 12,
			XIn: 0.01, Transient: 200, Samples: 9,
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.RVals).To(HaveLen(12))
		Expect(res.Outputs.Rows()).To(Equal(9))
		Expect(res.Outputs.Cols()).To(Equal(12))
		Expect(res.Elapsed).To(BeNumerically(">=", 0))
	})

	It("rejects negative sizes", func() {
		_, err := analysis.Run(context.Background(), analysis.Params{RSteps: -1, Samples: 3})
		Expect(err).To(MatchError(analysis.ErrShapeMismatch))
	})
})
