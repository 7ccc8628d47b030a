// Package errest estimates how often a classifier will be wrong on new data
// when only a small sample is available.
//
// Training error is optimistic: a model scored on the cases it was fitted
// to looks better than it is. errest implements the classic resampling
// corrections and a harness that measures how well each one works.
//
// # Estimators
//
// Package resample provides four estimators, all driving a model through
// the model.Trainer interface:
//
//   - CrossValidation: leave-one-out error
//   - Bootstrap: apparent error plus the ordinary bootstrap optimism
//   - E0: error on out-of-bag cases only
//   - E632: 0.632*E0 + 0.368*apparent error
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/errest/core/dataset"
//	    "github.com/YuminosukeSato/errest/linear"
//	    "github.com/YuminosukeSato/errest/resample"
//	)
//
//	func main() {
//	    // Predictors followed by the ±1 class label
//	    ds, err := dataset.FromRows([][]float64{
//	        {-1.2, 0.8, 1}, {-0.7, 1.1, 1}, {-1.5, 0.2, 1}, {0.1, 0.9, 1},
//	        {1.1, -0.6, -1}, {0.8, -1.3, -1}, {1.6, -0.2, -1}, {-0.2, -0.8, -1},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    trainer := linear.NewSVDRegression()
//	    sc := resample.NewScratch(ds.Rows(), ds.Predictors())
//
//	    cv, err := resample.CrossValidation(ds, trainer, sc)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    e632, err := resample.E632(ds, trainer, 200, resample.NewSource(1, 0), sc)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("CV=%.3f E632=%.3f\n", cv, e632)
//	}
//
// # Packages
//
//   - core/dataset: case tables (predictors plus outcome) backed by gonum/mat
//   - core/model: the Trainer contract and fitted-state bookkeeping
//   - core/parallel: worker partitioning
//   - resample: the estimators and their parallel runner
//   - linear: least-squares trainer solved by SVD
//   - grnn: Gaussian kernel regression trainer
//   - preprocessing: predictor standardization
//   - metrics: 0/1 loss, error rate and summary statistics
//   - montecarlo: simulation harness comparing the estimators
//   - pkg/errors, pkg/log: structured errors and logging
//
// The bootcompare command in cmd/bootcompare runs the harness from the
// command line:
//
//	bootcompare -seed 7 -plot estimates.png 20 200 1000 1.0
package errest
