package montecarlo

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/YuminosukeSato/errest/metrics"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

// Method names one of the compared estimators.
type Method int

const (
	CrossValidation Method = iota
	Bootstrap
	E0
	E632
)

// Methods lists the estimators in report order.
var Methods = []Method{CrossValidation, Bootstrap, E0, E632}

func (m Method) String() string {
	switch m {
	case CrossValidation:
		return "CV"
	case Bootstrap:
		return "BOOT"
	case E0:
		return "E0"
	case E632:
		return "E632"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Report holds the per-trial results of a run. Slices have one entry per
// completed trial.
type Report struct {
	Samples      int
	Replications int
	Separation   float64

	Observed  []float64
	Estimates [4][]float64 // indexed by Method
}

func newReport(cfg *Config) *Report {
	r := &Report{
		Samples:      cfg.Samples,
		Replications: cfg.Replications,
		Separation:   cfg.Separation,
		Observed:     make([]float64, 0, cfg.Trials),
	}
	for _, m := range Methods {
		r.Estimates[m] = make([]float64, 0, cfg.Trials)
	}
	return r
}

// Trials returns the number of completed trials.
func (r *Report) Trials() int {
	return len(r.Observed)
}

func (r *Report) add(observed float64, estimates [4]float64) {
	r.Observed = append(r.Observed, observed)
	for _, m := range Methods {
		r.Estimates[m] = append(r.Estimates[m], estimates[m])
	}
}

// Summary returns the mean and population standard deviation of method m
// across completed trials.
func (r *Report) Summary(m Method) (metrics.Summary, error) {
	if m < CrossValidation || m > E632 {
		return metrics.Summary{}, errors.NewValueError("Report.Summary", m.String()+" is not a known method")
	}
	return metrics.Summarize(r.Estimates[m])
}

// ObservedSummary summarises the observed test-set error.
func (r *Report) ObservedSummary() (metrics.Summary, error) {
	return metrics.Summarize(r.Observed)
}

// WriteTable writes the summary table:
//
//	Trials 1000  Observed error 0.23700
//	METHOD  MEAN     STD
//	CV      0.23951  0.09620
//	...
func (r *Report) WriteTable(w io.Writer) error {
	obs, err := r.ObservedSummary()
	if err != nil {
		return errors.Wrap(err, "report has no trials")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Trials %d\tObserved error %.5f\n", r.Trials(), obs.Mean)
	fmt.Fprintln(tw, "METHOD\tMEAN\tSTD")
	for _, m := range Methods {
		s, err := r.Summary(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%.5f\t%.5f\n", m, s.Mean, s.Std)
	}
	return tw.Flush()
}

// logProgress writes one record for the observed error and one per method.
func (r *Report) logProgress(logger log.Logger) {
	obs, err := r.ObservedSummary()
	if err != nil {
		logger.Error("Progress summary failed", log.ErrorKey, err)
		return
	}
	logger.Info("Trials completed",
		log.TrialKey, r.Trials(),
		log.ObservedKey, obs.Mean,
	)
	for _, m := range Methods {
		s, err := r.Summary(m)
		if err != nil {
			logger.Error("Progress summary failed", log.EstimatorKey, m.String(), log.ErrorKey, err)
			continue
		}
		logger.Info("Computed error",
			log.EstimatorKey, m.String(),
			log.MeanKey, s.Mean,
			log.StdKey, s.Std,
		)
	}
}
