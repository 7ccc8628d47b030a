// Package log defines standard attribute keys for resampling operations.
//
// Using these keys keeps estimator, trainer and harness logs consistent so
// runs can be filtered and compared after the fact.
//
// The keys follow a hierarchical naming convention (e.g., "resample.estimator",
// "data.samples").

package log

// Estimator and trainer context
const (
	// EstimatorKey identifies the resampling estimator.
	// Examples: "CrossValidation", "Bootstrap", "E0", "E632", "Apparent"
	EstimatorKey = "resample.estimator"

	// TrainerKey identifies the trainer driven by the estimator.
	// Examples: "SVDRegression", "GRNN"
	TrainerKey = "model.trainer"

	// ComponentKey identifies which package is emitting the record.
	ComponentKey = "component"
)

// Data shape
const (
	// SamplesKey is the number of cases (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of predictor columns.
	FeaturesKey = "data.features"

	// TestSamplesKey is the number of cases in an independent test set.
	TestSamplesKey = "data.test_samples"
)

// Resampling progress
const (
	// ReplicationsKey is the number of bootstrap replications requested.
	ReplicationsKey = "resample.replications"

	// ReplicationKey is the index of the current bootstrap replication.
	ReplicationKey = "resample.replication"

	// FoldKey is the index of the held-out case in leave-one-out.
	FoldKey = "resample.fold"

	// OutOfBagKey is the number of out-of-bag case evaluations.
	OutOfBagKey = "resample.out_of_bag"

	// WorkerKey identifies a worker of the parallel runner.
	WorkerKey = "resample.worker"
)

// Results
const (
	// EstimateKey is a scalar error estimate.
	EstimateKey = "metrics.estimate"

	// ApparentKey is the apparent (resubstitution) error.
	ApparentKey = "metrics.apparent"

	// ExcessKey is the bootstrap optimism (excess error) term.
	ExcessKey = "metrics.excess"

	// ObservedKey is the error measured on an independent test set.
	ObservedKey = "metrics.observed"

	// MeanKey and StdKey summarise estimates across trials.
	MeanKey = "metrics.mean"
	StdKey  = "metrics.std"
)

// Harness
const (
	// TrialKey is the index of the Monte-Carlo trial.
	TrialKey = "harness.trial"

	// TrialsKey is the number of trials requested.
	TrialsKey = "harness.trials"

	// SeparationKey is the class separation of the synthetic data.
	SeparationKey = "harness.separation"

	// RandomSeedKey records the seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context
const (
	// ErrorKey carries the error value.
	ErrorKey = "error"

	// StacktraceKey contains the stack trace extracted from cockroachdb/errors.
	StacktraceKey = "error.stacktrace"
)
