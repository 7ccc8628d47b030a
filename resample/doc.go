// Package resample estimates the generalization error of a classifier from a
// single sample by resampling.
//
// Four estimators are provided, all driving the same model.Trainer:
//
//   - CrossValidation: leave-one-out error.
//   - Bootstrap: apparent error plus the ordinary bootstrap optimism,
//     where each case's loss is weighted by (1 - times drawn).
//   - E0: mean loss over out-of-bag cases only.
//   - E632: 0.632*E0 + 0.368*apparent error.
//
// Loss is the sign-agreement 0/1 loss of metrics.Loss; outcomes are encoded
// as ±1.
//
// Every estimator is a pure function of its inputs: the dataset is never
// written, the trainer is called as if freshly reset each time, and the only
// randomness comes from the Source passed in. Callers allocate a Scratch once
// per problem size and reuse it across calls:
//
//	sc := resample.NewScratch(ds.Rows(), ds.Predictors())
//	src := rand.New(rand.NewPCG(seed, 0))
//	cv, err := resample.CrossValidation(ds, trainer, sc)
//	e632, err := resample.E632(ds, trainer, 200, src, sc)
//
// Parallel runs the bootstrap family across goroutines with one trainer,
// scratch area, accumulator and random stream per worker.
package resample
