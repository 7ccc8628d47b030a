package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

// Bootstrap returns the ordinary bootstrap estimate: apparent error plus
// the excess error
//
//	excess = Σ_b Σ_i (1 - count_b[i]) * loss_b(i) / (n * nboot)
//
// where model b is trained on the b-th resample and scored on every
// original case. The excess may be negative and is not clamped, so the
// result can fall slightly outside [0, 1].
func Bootstrap(ds *dataset.Dataset, tr model.Trainer, nboot int, src Source, sc *Scratch, opts ...Option) (estimate float64, err error) {
	const op = "Bootstrap"
	defer errors.Recover(&err, op)

	if err := checkInputs(op, ds, sc, nboot); err != nil {
		return 0, err
	}
	if src == nil {
		return 0, errors.NewValidationError("src", "must not be nil", nil)
	}
	o := buildOptions(opts)

	var acc excessSum
	for rep := 0; rep < nboot; rep++ {
		if err := replicate(ds, tr, src, sc); err != nil {
			o.logger.Error("Trainer failed", log.EstimatorKey, op, log.ReplicationKey, rep, log.ErrorKey, err)
			return 0, errors.Wrapf(err, "%s: replication %d", op, rep)
		}
		acc.add(ds, sc.Predicted, sc.Counts)
	}
	excess := acc.excess(ds.Rows())

	app, err := apparent(ds, tr, sc.Predicted)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	estimate = app + excess
	o.logger.Debug("Estimate computed",
		log.EstimatorKey, op,
		log.TrainerKey, model.NameOf(tr),
		log.SamplesKey, ds.Rows(),
		log.ReplicationsKey, nboot,
		log.ApparentKey, app,
		log.ExcessKey, excess,
		log.EstimateKey, estimate,
	)
	return estimate, nil
}
