package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/core/parallel"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

// Parallel runs the bootstrap-family estimators with replications spread
// over several goroutines.
//
// Worker w owns a trainer from NewTrainer, its own Scratch, a private
// accumulator and the random stream NewSource(Seed, w). Replications are
// split into fixed contiguous ranges and partial sums are merged in worker
// order after all workers finish, so the result depends only on
// (dataset, nboot, Seed, Workers). It differs from the sequential estimators
// because the random streams differ.
type Parallel struct {
	// Workers is the number of goroutines; <= 0 means runtime.NumCPU().
	Workers int
	// Seed selects the family of random streams.
	Seed uint64
	// NewTrainer returns a trainer for exclusive use by one worker.
	NewTrainer func() model.Trainer
	// Logger receives debug records; log.GetLogger() when nil.
	Logger log.Logger
}

func (p *Parallel) logger() log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.GetLogger()
}

// run executes nboot replications and hands each worker's results to add.
// add is called only from the worker that owns index worker.
func (p *Parallel) run(op string, ds *dataset.Dataset, nboot int, add func(worker int, predicted []float64, counts []int)) (int, error) {
	if p.NewTrainer == nil {
		return 0, errors.NewValidationError("NewTrainer", "must not be nil", nil)
	}
	if err := checkShape(ds, nboot); err != nil {
		return 0, err
	}

	ranges := parallel.Partition(nboot, p.Workers)
	errs := make([]error, len(ranges))

	parallel.ForEachWorker(nboot, p.Workers, func(worker, start, end int) {
		errs[worker] = errors.SafeExecute(op, func() error {
			tr := p.NewTrainer()
			sc := NewScratch(ds.Rows(), ds.Predictors())
			src := NewSource(p.Seed, uint64(worker))
			for rep := start; rep < end; rep++ {
				if err := replicate(ds, tr, src, sc); err != nil {
					return errors.Wrapf(err, "%s: worker %d replication %d", op, worker, rep)
				}
				add(worker, sc.Predicted, sc.Counts)
			}
			return nil
		})
	})

	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}
	return len(ranges), nil
}

func (p *Parallel) apparent(ds *dataset.Dataset) (float64, error) {
	var app float64
	err := errors.SafeExecute("Apparent", func() error {
		var err error
		app, err = apparent(ds, p.NewTrainer(), make([]float64, ds.Rows()))
		return err
	})
	return app, err
}

func (p *Parallel) e0(op string, ds *dataset.Dataset, nboot int) (oobSum, error) {
	ranges := parallel.Partition(nboot, p.Workers)
	parts := make([]oobSum, len(ranges))
	if _, err := p.run(op, ds, nboot, func(worker int, predicted []float64, counts []int) {
		parts[worker].add(ds, predicted, counts)
	}); err != nil {
		return oobSum{}, err
	}

	var acc oobSum
	for _, part := range parts {
		acc.merge(part)
	}
	return acc, nil
}

// Bootstrap is the parallel form of the package-level Bootstrap.
func (p *Parallel) Bootstrap(ds *dataset.Dataset, nboot int) (float64, error) {
	const op = "Bootstrap"
	ranges := parallel.Partition(nboot, p.Workers)
	parts := make([]excessSum, len(ranges))
	workers, err := p.run(op, ds, nboot, func(worker int, predicted []float64, counts []int) {
		parts[worker].add(ds, predicted, counts)
	})
	if err != nil {
		return 0, err
	}

	var acc excessSum
	for _, part := range parts {
		acc.merge(part)
	}
	excess := acc.excess(ds.Rows())

	app, err := p.apparent(ds)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	estimate := app + excess
	p.logger().Debug("Estimate computed",
		log.EstimatorKey, op,
		log.WorkerKey, workers,
		log.SamplesKey, ds.Rows(),
		log.ReplicationsKey, nboot,
		log.ApparentKey, app,
		log.ExcessKey, excess,
		log.EstimateKey, estimate,
	)
	return estimate, nil
}

// E0 is the parallel form of the package-level E0.
func (p *Parallel) E0(ds *dataset.Dataset, nboot int) (float64, error) {
	const op = "E0"
	acc, err := p.e0(op, ds, nboot)
	if err != nil {
		return 0, err
	}

	estimate := acc.estimate()
	p.logger().Debug("Estimate computed",
		log.EstimatorKey, op,
		log.SamplesKey, ds.Rows(),
		log.ReplicationsKey, nboot,
		log.OutOfBagKey, acc.ntot,
		log.EstimateKey, estimate,
	)
	return estimate, nil
}

// E632 is the parallel form of the package-level E632.
func (p *Parallel) E632(ds *dataset.Dataset, nboot int) (float64, error) {
	const op = "E632"
	acc, err := p.e0(op, ds, nboot)
	if err != nil {
		return 0, err
	}
	app, err := p.apparent(ds)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	estimate := blend632(acc.estimate(), app)
	p.logger().Debug("Estimate computed",
		log.EstimatorKey, op,
		log.SamplesKey, ds.Rows(),
		log.ReplicationsKey, nboot,
		log.ApparentKey, app,
		log.EstimateKey, estimate,
	)
	return estimate, nil
}
