// Command bootcompare runs the Monte-Carlo comparison of resampling error
// estimators on synthetic two-class data.
//
// Usage:
//
//	bootcompare [flags] nsamples nboot ntries separation
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/grnn"
	"github.com/YuminosukeSato/errest/linear"
	"github.com/YuminosukeSato/errest/montecarlo"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bootcompare: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	seed        uint64
	trainer     string
	workers     int
	plot        string
	logLevel    string
	reportEvery int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bootcompare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: bootcompare [flags] nsamples nboot ntries separation")
		fs.PrintDefaults()
	}

	var o options
	fs.Uint64Var(&o.seed, "seed", 1, "seed of the random streams")
	fs.StringVar(&o.trainer, "trainer", "linear", "model under study: linear|grnn")
	fs.IntVar(&o.workers, "workers", 1, "goroutines for the bootstrap estimators (0 = one per CPU)")
	fs.StringVar(&o.plot, "plot", "", "write a box plot of the estimates to this file (.png, .svg, .pdf)")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	fs.IntVar(&o.reportEvery, "report-every", 0, "trials between progress records (0 = automatic)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 4 {
		fs.Usage()
		return errors.Newf("expected 4 arguments, got %d", fs.NArg())
	}
	nsamples, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "nsamples")
	}
	nboot, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return errors.Wrap(err, "nboot")
	}
	ntries, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return errors.Wrap(err, "ntries")
	}
	separation, err := strconv.ParseFloat(fs.Arg(3), 64)
	if err != nil {
		return errors.Wrap(err, "separation")
	}

	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	logger := log.NewZerologLogger(stderr, level)
	prev := log.SetLogger(logger)
	defer log.SetLogger(prev)

	newTrainer, err := trainerFactory(o.trainer, logger)
	if err != nil {
		return err
	}

	cfg := montecarlo.NewConfig(nsamples, nboot, ntries, separation,
		montecarlo.WithSeed(o.seed),
		montecarlo.WithWorkers(o.workers),
		montecarlo.WithReportEvery(o.reportEvery),
		montecarlo.WithTrainer(newTrainer),
		montecarlo.WithLogger(logger),
	)

	report, runErr := montecarlo.Run(ctx, cfg)
	if report == nil {
		return runErr
	}
	if runErr != nil {
		logger.Warn("Partial results", log.TrialsKey, report.Trials(), log.ErrorKey, runErr)
	}
	if report.Trials() > 0 {
		if err := report.WriteTable(stdout); err != nil {
			return err
		}
		if o.plot != "" {
			if err := montecarlo.SavePlot(report, o.plot); err != nil {
				return err
			}
			logger.Info("Plot written", "path", o.plot)
		}
	}
	return runErr
}

func trainerFactory(name string, logger log.Logger) (func() model.Trainer, error) {
	switch name {
	case "linear":
		return func() model.Trainer {
			return linear.NewSVDRegression(linear.WithLogger(logger))
		}, nil
	case "grnn":
		return func() model.Trainer {
			return grnn.New(grnn.WithLogger(logger))
		}, nil
	default:
		return nil, errors.NewValidationError("trainer", "must be linear or grnn", name)
	}
}
