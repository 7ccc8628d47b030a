// Package grnn implements a general regression neural network trainer: a
// Gaussian-kernel weighted mean of training outcomes.
//
// Each input j is scaled by sigma_j = scale * sd_j, where sd_j is the
// population standard deviation of input j in the training table, as
// computed by preprocessing.StandardScaler. The common scale is
// chosen per TrainAndPredict call by minimising the leave-one-out mean
// squared error over a geometric grid, so training is deterministic.
package grnn

import (
	"math"

	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/core/parallel"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
	"github.com/YuminosukeSato/errest/preprocessing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultSigmaLow and DefaultSigmaHigh bound the scale grid.
	DefaultSigmaLow  = 0.05
	DefaultSigmaHigh = 5.0
	// DefaultGridPoints is the number of scales tried.
	DefaultGridPoints = 20

	parallelThreshold = 1000
)

// GRNN is a kernel regression trainer. It is not safe for concurrent use;
// give each goroutine its own instance.
type GRNN struct {
	state *model.StateManager

	sigmaLow, sigmaHigh float64
	gridPoints          int
	logger              log.Logger

	scaler *preprocessing.StandardScaler
	sd     []float64 // per-input standard deviations, owned by scaler
	sigma  []float64 // per-input kernel widths of the last fit
	scale  float64
	grid   []float64
	dist   *mat.SymDense // scaled squared distances between training cases
}

// New returns a GRNN trainer.
func New(opts ...Option) *GRNN {
	g := &GRNN{
		state:      model.NewStateManager(),
		scaler:     preprocessing.NewStandardScaler(false, true),
		sigmaLow:   DefaultSigmaLow,
		sigmaHigh:  DefaultSigmaHigh,
		gridPoints: DefaultGridPoints,
		logger:     log.GetLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.NewNopLogger()
	}
	return g
}

// Name returns the trainer name used in log records.
func (g *GRNN) Name() string {
	return "GRNN"
}

func (g *GRNN) validate() error {
	if !(g.sigmaLow > 0) || math.IsInf(g.sigmaLow, 0) {
		return errors.NewValidationError("sigmaLow", "must be positive and finite", g.sigmaLow)
	}
	if !(g.sigmaHigh >= g.sigmaLow) || math.IsInf(g.sigmaHigh, 0) {
		return errors.NewValidationError("sigmaHigh", "must be finite and not below sigmaLow", g.sigmaHigh)
	}
	if g.gridPoints < 1 {
		return errors.NewValidationError("gridPoints", "must be at least 1", g.gridPoints)
	}
	return nil
}

// TrainAndPredict selects the kernel widths on train and writes the kernel
// regression estimate for every row of test into predicted.
func (g *GRNN) TrainAndPredict(train, test *dataset.Dataset, predicted []float64) error {
	const op = "GRNN.TrainAndPredict"
	g.state.Reset()

	if err := g.validate(); err != nil {
		return err
	}
	if err := model.CheckTables(op, train, test, predicted); err != nil {
		return err
	}

	if err := g.fit(train); err != nil {
		return err
	}

	out := predicted[:test.Rows()]
	parallel.ParallelizeWithThreshold(len(out), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = g.predictOne(train, test.Inputs(i))
		}
	})
	return errors.CheckNumericalStability(op, out)
}

func (g *GRNN) fit(train *dataset.Dataset) error {
	n, p := train.Rows(), train.Predictors()

	if err := g.scaler.Fit(train); err != nil {
		return errors.Wrap(err, "GRNN.fit")
	}
	g.sd = g.scaler.Scale

	g.scale = math.Sqrt(g.sigmaLow * g.sigmaHigh)
	if n > 1 {
		g.scale = g.selectScale(train)
	}

	g.sigma = resize(g.sigma, p)
	for j := range g.sigma {
		g.sigma[j] = g.scale * g.sd[j]
	}

	g.state.SetFitted(p, n)
	g.logger.Debug("Model fitted",
		log.TrainerKey, g.Name(),
		log.SamplesKey, n,
		log.FeaturesKey, p,
		"scale", g.scale,
	)
	return nil
}

// selectScale returns the grid scale with the smallest leave-one-out mean
// squared error; ties go to the smaller scale.
func (g *GRNN) selectScale(train *dataset.Dataset) float64 {
	n := train.Rows()

	// Distances at unit scale; a scale s divides them by s².
	if g.dist == nil || g.dist.SymmetricDim() != n {
		g.dist = mat.NewSymDense(n, nil)
	}
	for i := 0; i < n; i++ {
		xi := train.Inputs(i)
		for k := i + 1; k < n; k++ {
			g.dist.SetSym(i, k, g.distance(xi, train.Inputs(k), 1))
		}
	}

	g.grid = resize(g.grid, g.gridPoints)
	if g.gridPoints == 1 {
		g.grid[0] = math.Sqrt(g.sigmaLow * g.sigmaHigh)
	} else {
		floats.LogSpan(g.grid, g.sigmaLow, g.sigmaHigh)
	}

	errs := make([]float64, len(g.grid))
	for s, scale := range g.grid {
		inv := 1 / (scale * scale)
		var sse float64
		for i := 0; i < n; i++ {
			pred := kernelMean(n, i, func(k int) float64 { return g.dist.At(i, k) * inv }, train)
			d := train.Outcome(i) - pred
			sse += d * d
		}
		errs[s] = sse / float64(n)
	}
	return g.grid[floats.MinIdx(errs)]
}

// distance returns Σ ((a_j - b_j) / (scale*sd_j))².
func (g *GRNN) distance(a, b []float64, scale float64) float64 {
	var d float64
	for j := range a {
		z := (a[j] - b[j]) / (scale * g.sd[j])
		d += z * z
	}
	return d
}

func (g *GRNN) predictOne(train *dataset.Dataset, x []float64) float64 {
	return kernelMean(train.Rows(), -1, func(k int) float64 {
		return g.distance(x, train.Inputs(k), g.scale)
	}, train)
}

// kernelMean returns Σ w_k y_k / Σ w_k with w_k = exp(-d_k), skipping case
// skip. Distances are shifted by their minimum so the largest weight is 1
// and the denominator never underflows.
func kernelMean(n, skip int, dist func(k int) float64, train *dataset.Dataset) float64 {
	dmin := math.Inf(1)
	for k := 0; k < n; k++ {
		if k != skip {
			dmin = math.Min(dmin, dist(k))
		}
	}
	if math.IsInf(dmin, 1) {
		return 0
	}

	var num, den float64
	for k := 0; k < n; k++ {
		if k == skip {
			continue
		}
		w := math.Exp(-(dist(k) - dmin))
		num += w * train.Outcome(k)
		den += w
	}
	return num / den
}

// Scale returns the common kernel scale chosen by the last fit.
func (g *GRNN) Scale() (float64, error) {
	if err := g.state.RequireFitted(g.Name(), "Scale"); err != nil {
		return 0, err
	}
	return g.scale, nil
}

// Sigma returns a copy of the per-input kernel widths of the last fit.
func (g *GRNN) Sigma() ([]float64, error) {
	if err := g.state.RequireFitted(g.Name(), "Sigma"); err != nil {
		return nil, err
	}
	out := make([]float64, len(g.sigma))
	copy(out, g.sigma)
	return out, nil
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
