package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/metrics"
	"github.com/YuminosukeSato/errest/pkg/errors"
)

// Apparent returns the resubstitution error: tr is trained on all of ds and
// scored on the same cases. It is optimistically biased and serves as the
// base that Bootstrap and E632 correct.
func Apparent(ds *dataset.Dataset, tr model.Trainer, sc *Scratch) (estimate float64, err error) {
	const op = "Apparent"
	defer errors.Recover(&err, op)

	if err := checkInputs(op, ds, sc, 1); err != nil {
		return 0, err
	}
	return apparent(ds, tr, sc.Predicted)
}

func apparent(ds *dataset.Dataset, tr model.Trainer, predicted []float64) (float64, error) {
	if err := tr.TrainAndPredict(ds, ds, predicted); err != nil {
		return 0, errors.Wrap(err, "apparent error")
	}
	return metrics.ErrorRate(ds, predicted)
}
