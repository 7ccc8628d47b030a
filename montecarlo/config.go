package montecarlo

import (
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/linear"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

// TestSetFactor is the size of the independent test set relative to the
// dataset.
const TestSetFactor = 10

// Config describes a Monte-Carlo comparison.
type Config struct {
	Samples      int     // cases per dataset
	Replications int     // bootstrap replications per estimate
	Trials       int     // independent datasets
	Separation   float64 // class shift along each axis

	Seed uint64
	// Workers selects how the bootstrap family runs: 1 runs the sequential
	// estimators, more than 1 uses that many goroutines, and 0 or less uses
	// one goroutine per CPU.
	Workers int
	// ReportEvery is the number of trials between progress records; 0
	// derives it from Samples*Replications.
	ReportEvery int
	// NewTrainer creates the model under study. Called once per goroutine.
	NewTrainer func() model.Trainer
	Logger     log.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithSeed sets the seed of every random stream in the run.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithWorkers sets Config.Workers.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithReportEvery sets the progress interval in trials.
func WithReportEvery(n int) Option {
	return func(c *Config) {
		c.ReportEvery = n
	}
}

// WithTrainer sets the trainer factory.
func WithTrainer(newTrainer func() model.Trainer) Option {
	return func(c *Config) {
		c.NewTrainer = newTrainer
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// NewConfig returns a Config with the SVD linear trainer, seed 1 and
// sequential estimators.
func NewConfig(samples, replications, trials int, separation float64, opts ...Option) *Config {
	c := &Config{
		Samples:      samples,
		Replications: replications,
		Trials:       trials,
		Separation:   separation,
		Seed:         1,
		Workers:      1,
		Logger:       log.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.NewTrainer == nil {
		logger := c.Logger
		c.NewTrainer = func() model.Trainer {
			return linear.NewSVDRegression(linear.WithLogger(logger))
		}
	}
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}
	return c
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Samples <= 1 {
		return errors.NewValidationError("samples", "at least 2 cases are required", c.Samples)
	}
	if c.Replications <= 0 {
		return errors.NewValidationError("replications", "must be positive", c.Replications)
	}
	if c.Trials <= 0 {
		return errors.NewValidationError("trials", "must be positive", c.Trials)
	}
	if !(c.Separation >= 0) {
		return errors.NewValidationError("separation", "must be non-negative", c.Separation)
	}
	if c.ReportEvery < 0 {
		return errors.NewValidationError("reportEvery", "must not be negative", c.ReportEvery)
	}
	if c.NewTrainer == nil {
		return errors.NewValidationError("NewTrainer", "must not be nil", nil)
	}
	return nil
}

// reportInterval mirrors the classic choice of about one progress line per
// million case-replications, but never more often than every other trial.
func (c *Config) reportInterval() int {
	if c.ReportEvery > 0 {
		return c.ReportEvery
	}
	return max(1_000_000/(c.Samples*c.Replications), 2)
}
