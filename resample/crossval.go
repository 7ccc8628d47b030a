package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/metrics"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

// CrossValidation returns the leave-one-out error of tr on ds: each case is
// held out once, the trainer is fitted on the other n-1 cases, and the
// estimate is the mean 0/1 loss over the n held-out predictions.
//
// The training table is built in sc.Train, so ds is never modified.
func CrossValidation(ds *dataset.Dataset, tr model.Trainer, sc *Scratch, opts ...Option) (estimate float64, err error) {
	const op = "CrossValidation"
	defer errors.Recover(&err, op)

	if err := checkInputs(op, ds, sc, 1); err != nil {
		return 0, err
	}
	o := buildOptions(opts)
	n := ds.Rows()

	// Fold 0 trains on cases 1..n-1 in order. Going from fold i to fold i+1
	// only position i of the training table changes: it receives case i.
	for k := 1; k < n; k++ {
		sc.Train.CopyRow(k-1, ds, k)
	}

	var sum float64
	for i := 0; i < n; i++ {
		if i > 0 {
			sc.Train.CopyRow(i-1, ds, i-1)
		}
		sc.Test.CopyRow(0, ds, i)

		if err := tr.TrainAndPredict(sc.Train, sc.Test, sc.Predicted[:1]); err != nil {
			o.logger.Error("Trainer failed", log.EstimatorKey, op, log.FoldKey, i, log.ErrorKey, err)
			return 0, errors.Wrapf(err, "%s: fold %d", op, i)
		}
		sum += metrics.Loss(ds.Outcome(i), sc.Predicted[0])
	}

	estimate = sum / float64(n)
	o.logger.Debug("Estimate computed",
		log.EstimatorKey, op,
		log.TrainerKey, model.NameOf(tr),
		log.SamplesKey, n,
		log.EstimateKey, estimate,
	)
	return estimate, nil
}
