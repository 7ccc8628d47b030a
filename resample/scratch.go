package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/pkg/errors"
)

// Scratch holds the work areas reused across estimator calls on datasets of
// one shape. Allocate it once with NewScratch and pass it to every call;
// the estimators never allocate per replication.
type Scratch struct {
	// Sample receives each bootstrap resample (n rows).
	Sample *dataset.Dataset
	// Train holds the leave-one-out training table (n-1 rows).
	Train *dataset.Dataset
	// Test holds the single held-out case.
	Test *dataset.Dataset
	// Predicted receives trainer output (n values).
	Predicted []float64
	// Counts is the inclusion-count vector of the latest draw.
	Counts []int
}

// NewScratch allocates work areas for n cases of p predictors.
// n must be at least 2 and p at least 1; it panics otherwise.
func NewScratch(n, p int) *Scratch {
	if n < 2 || p < 1 {
		panic(errors.NewValidationError("n,p", "scratch needs n >= 2 and p >= 1", [2]int{n, p}))
	}
	return &Scratch{
		Sample:    dataset.New(n, p),
		Train:     dataset.New(n-1, p),
		Test:      dataset.New(1, p),
		Predicted: make([]float64, n),
		Counts:    make([]int, n),
	}
}

func (s *Scratch) check(op string, n, p int) error {
	if s == nil {
		return errors.NewValidationError("scratch", "must not be nil", nil)
	}
	if s.Sample.Rows() != n || len(s.Predicted) < n || len(s.Counts) != n || s.Train.Rows() != n-1 {
		return errors.Wrap(errors.NewDimensionError(op, n, s.Sample.Rows(), 0), "scratch sized for a different dataset")
	}
	if s.Sample.Predictors() != p || s.Train.Predictors() != p || s.Test.Predictors() != p {
		return errors.Wrap(errors.NewDimensionError(op, p+1, s.Sample.Predictors()+1, 1), "scratch sized for a different dataset")
	}
	return nil
}

// checkInputs rejects shapes the estimators cannot work with. Estimators
// without replications pass nboot = 1.
func checkInputs(op string, ds *dataset.Dataset, sc *Scratch, nboot int) error {
	if err := checkShape(ds, nboot); err != nil {
		return err
	}
	return sc.check(op, ds.Rows(), ds.Predictors())
}

func checkShape(ds *dataset.Dataset, nboot int) error {
	if ds == nil {
		return errors.NewValidationError("dataset", "must not be nil", nil)
	}
	if n := ds.Rows(); n < 2 {
		return errors.NewValidationError("n", "at least 2 cases are required", n)
	}
	if p := ds.Predictors(); p < 1 {
		return errors.NewValidationError("p", "at least 1 predictor is required", p)
	}
	if nboot <= 0 {
		return errors.NewValidationError("nboot", "must be positive", nboot)
	}
	return nil
}
