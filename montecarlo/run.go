package montecarlo

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/metrics"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
	"github.com/YuminosukeSato/errest/resample"
)

// Stream identifiers of the PCG sources derived from Config.Seed.
const (
	dataStream      = 0
	estimatorStream = 1
)

// Run performs cfg.Trials trials. Cancellation is checked between trials;
// on cancellation the report of the completed trials is returned together
// with the context error.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger = logger.With(log.ComponentKey, "montecarlo")

	n := cfg.Samples
	t := &trial{
		cfg:       cfg,
		gen:       NewGenerator(rand.NewPCG(cfg.Seed, dataStream)),
		src:       resample.NewSource(cfg.Seed, estimatorStream),
		data:      dataset.New(n, 2),
		test:      dataset.New(TestSetFactor*n, 2),
		sc:        resample.NewScratch(n, 2),
		tr:        cfg.NewTrainer(),
		predicted: make([]float64, TestSetFactor*n),
		opts:      []resample.Option{resample.WithLogger(logger)},
	}

	logger.Info("Starting comparison",
		log.SamplesKey, n,
		log.TestSamplesKey, TestSetFactor*n,
		log.ReplicationsKey, cfg.Replications,
		log.TrialsKey, cfg.Trials,
		log.SeparationKey, cfg.Separation,
		log.RandomSeedKey, cfg.Seed,
		log.TrainerKey, model.NameOf(t.tr),
	)

	start := time.Now()
	report := newReport(cfg)
	every := cfg.reportInterval()
	for i := 0; i < cfg.Trials; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("Run cancelled", log.TrialKey, i, log.ErrorKey, err)
			return report, errors.Wrapf(err, "montecarlo: stopped after %d trials", i)
		}

		observed, estimates, err := t.run(i, logger)
		if err != nil {
			return report, errors.Wrapf(err, "montecarlo: trial %d", i)
		}
		report.add(observed, estimates)

		if (i+1)%every == 0 || i == cfg.Trials-1 {
			report.logProgress(logger)
		}
	}

	logger.Info("Comparison finished",
		log.TrialsKey, report.Trials(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return report, nil
}

// trial owns the buffers reused from one trial to the next.
type trial struct {
	cfg       *Config
	gen       *Generator
	src       resample.Source
	data      *dataset.Dataset
	test      *dataset.Dataset
	sc        *resample.Scratch
	tr        model.Trainer
	predicted []float64
	opts      []resample.Option
}

func (t *trial) run(index int, logger log.Logger) (float64, [4]float64, error) {
	var est [4]float64
	if err := t.gen.Fill(t.data, t.cfg.Separation); err != nil {
		return 0, est, err
	}
	if err := t.gen.Fill(t.test, t.cfg.Separation); err != nil {
		return 0, est, err
	}

	if err := t.tr.TrainAndPredict(t.data, t.test, t.predicted); err != nil {
		return 0, est, errors.Wrap(err, "observed error")
	}
	observed, err := metrics.ErrorRate(t.test, t.predicted)
	if err != nil {
		return 0, est, err
	}

	est[CrossValidation], err = resample.CrossValidation(t.data, t.tr, t.sc, t.opts...)
	if err != nil {
		return 0, est, err
	}

	if t.cfg.Workers == 1 {
		nboot := t.cfg.Replications
		if est[Bootstrap], err = resample.Bootstrap(t.data, t.tr, nboot, t.src, t.sc, t.opts...); err != nil {
			return 0, est, err
		}
		if est[E0], err = resample.E0(t.data, t.tr, nboot, t.src, t.sc, t.opts...); err != nil {
			return 0, est, err
		}
		if est[E632], err = resample.E632(t.data, t.tr, nboot, t.src, t.sc, t.opts...); err != nil {
			return 0, est, err
		}
	} else if err := t.runParallel(index, &est, logger); err != nil {
		return 0, est, err
	}

	logger.Debug("Trial completed",
		log.TrialKey, index,
		log.ObservedKey, observed,
	)
	return observed, est, nil
}

// runParallel uses a distinct seed per trial and estimator so that the
// streams never repeat across the run.
func (t *trial) runParallel(index int, est *[4]float64, logger log.Logger) error {
	base := t.cfg.Seed ^ (uint64(index+1) * 0x9e3779b97f4a7c15)
	p := resample.Parallel{
		Workers:    t.cfg.Workers,
		NewTrainer: t.cfg.NewTrainer,
		Logger:     logger,
	}
	nboot := t.cfg.Replications

	var err error
	p.Seed = base + 1
	if est[Bootstrap], err = p.Bootstrap(t.data, nboot); err != nil {
		return err
	}
	p.Seed = base + 2
	if est[E0], err = p.E0(t.data, nboot); err != nil {
		return err
	}
	p.Seed = base + 3
	if est[E632], err = p.E632(t.data, nboot); err != nil {
		return err
	}
	return nil
}
