package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

// E632Weight is the weight of E0 in the E632 blend, approximately 1 - 1/e:
// the limiting probability that a case appears in a bootstrap resample of
// size n drawn from n cases. It is fixed and does not depend on n.
const E632Weight = 0.632

// E632 returns 0.632*E0 + 0.368*apparent error. Because it is a convex
// combination it always lies between the two.
func E632(ds *dataset.Dataset, tr model.Trainer, nboot int, src Source, sc *Scratch, opts ...Option) (estimate float64, err error) {
	const op = "E632"
	defer errors.Recover(&err, op)

	if err := checkInputs(op, ds, sc, nboot); err != nil {
		return 0, err
	}
	if src == nil {
		return 0, errors.NewValidationError("src", "must not be nil", nil)
	}
	o := buildOptions(opts)

	acc, err := e0Replications(ds, tr, nboot, src, sc, o.logger)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}
	e0 := acc.estimate()

	app, err := apparent(ds, tr, sc.Predicted)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	estimate = blend632(e0, app)
	o.logger.Debug("Estimate computed",
		log.EstimatorKey, op,
		log.TrainerKey, model.NameOf(tr),
		log.SamplesKey, ds.Rows(),
		log.ReplicationsKey, nboot,
		log.ApparentKey, app,
		log.EstimateKey, estimate,
	)
	return estimate, nil
}

func blend632(e0, apparent float64) float64 {
	return E632Weight*e0 + (1-E632Weight)*apparent
}
