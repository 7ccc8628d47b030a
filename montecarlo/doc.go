// Package montecarlo compares the resampling estimators against the error a
// model actually makes on fresh data.
//
// Each trial draws a small dataset of two correlated Gaussian clusters and an
// independent test set ten times larger. A model trained on the dataset is
// scored on the test set to give the observed error; the four estimators in
// package resample then estimate that error from the dataset alone. Over
// many trials the mean and spread of each estimator show its bias and
// variance.
//
//	cfg := montecarlo.NewConfig(20, 200, 1000, 1.0, montecarlo.WithSeed(7))
//	report, err := montecarlo.Run(ctx, cfg)
//	report.WriteTable(os.Stdout)
package montecarlo
