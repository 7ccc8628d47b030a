package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

// E0 returns Efron's E0 estimate: the mean loss over every (replication,
// case) pair in which the case was not drawn into that replication's
// resample.
//
// If no case is ever out of bag (possible only for tiny n and nboot) the
// estimate is 0 and an UndefinedMetricWarning is raised through errors.Warn.
func E0(ds *dataset.Dataset, tr model.Trainer, nboot int, src Source, sc *Scratch, opts ...Option) (estimate float64, err error) {
	const op = "E0"
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
		return 0, err
	}

	estimate = acc.estimate()
	o.logger.Debug("Estimate computed",
		log.EstimatorKey, op,
		log.TrainerKey, model.NameOf(tr),
		log.SamplesKey, ds.Rows(),
		log.ReplicationsKey, nboot,
		log.OutOfBagKey, acc.ntot,
		log.EstimateKey, estimate,
	)
	return estimate, nil
}

func e0Replications(ds *dataset.Dataset, tr model.Trainer, nboot int, src Source, sc *Scratch, logger log.Logger) (oobSum, error) {
	var acc oobSum
	for rep := 0; rep < nboot; rep++ {
		if err := replicate(ds, tr, src, sc); err != nil {
			logger.Error("Trainer failed", log.EstimatorKey, "E0", log.ReplicationKey, rep, log.ErrorKey, err)
			return oobSum{}, errors.Wrapf(err, "E0: replication %d", rep)
		}
		acc.add(ds, sc.Predicted, sc.Counts)
	}
	return acc, nil
}

func (a oobSum) estimate() float64 {
	if a.ntot == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("E0", "no out-of-bag cases in any replication", 0))
		return 0
	}
	return a.sum / float64(a.ntot)
}
