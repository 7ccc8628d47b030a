package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/metrics"
)

// replicate performs one bootstrap replication: it draws a resample into
// sc.Sample and sc.Counts, trains on it, and predicts every original case
// into sc.Predicted.
func replicate(ds *dataset.Dataset, tr model.Trainer, src Source, sc *Scratch) error {
	Draw(ds, src, sc.Sample, sc.Counts)
	return tr.TrainAndPredict(sc.Sample, ds, sc.Predicted)
}

// excessSum accumulates the ordinary bootstrap optimism. Cases drawn more
// than once contribute negatively; that is part of the estimator.
type excessSum struct {
	sum  float64
	reps int
}

func (a *excessSum) add(ds *dataset.Dataset, predicted []float64, counts []int) {
	for i := 0; i < ds.Rows(); i++ {
		a.sum += (1 - float64(counts[i])) * metrics.Loss(ds.Outcome(i), predicted[i])
	}
	a.reps++
}

func (a *excessSum) merge(b excessSum) {
	a.sum += b.sum
	a.reps += b.reps
}

// excess returns the grand mean over n cases and all replications.
func (a excessSum) excess(n int) float64 {
	return a.sum / float64(n*a.reps)
}

// oobSum accumulates loss over out-of-bag cases only.
type oobSum struct {
	sum  float64
	ntot int
}

func (a *oobSum) add(ds *dataset.Dataset, predicted []float64, counts []int) {
	for i := 0; i < ds.Rows(); i++ {
		if counts[i] != 0 {
			continue
		}
		a.sum += metrics.Loss(ds.Outcome(i), predicted[i])
		a.ntot++
	}
}

func (a *oobSum) merge(b oobSum) {
	a.sum += b.sum
	a.ntot += b.ntot
}
