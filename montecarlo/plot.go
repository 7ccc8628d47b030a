package montecarlo

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/errest/pkg/errors"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// newPlot draws one box per estimator with the mean observed error as a
// horizontal reference line.
func newPlot(r *Report) (*plot.Plot, error) {
	if r.Trials() == 0 {
		return nil, errors.NewValueError("montecarlo.plot", "report has no trials")
	}
	obs, err := r.ObservedSummary()
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Error estimates by method"
	p.Y.Label.Text = "Estimated error"

	names := make([]string, len(Methods))
	for i, m := range Methods {
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(r.Estimates[m]))
		if err != nil {
			return nil, errors.Wrapf(err, "box plot for %s", m)
		}
		p.Add(box)
		names[i] = m.String()
	}
	p.NominalX(names...)

	line, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: obs.Mean},
		{X: float64(len(Methods)) - 0.5, Y: obs.Mean},
	})
	if err != nil {
		return nil, errors.Wrap(err, "observed error line")
	}
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(line)
	p.Legend.Add("observed", line)
	p.Legend.Top = true

	return p, nil
}

// SavePlot writes the box plot to path; the format follows the extension
// (png, svg, pdf, ...).
func SavePlot(r *Report, path string) error {
	p, err := newPlot(r)
	if err != nil {
		return err
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return errors.Wrapf(err, "save plot %s", path)
	}
	return nil
}

// WritePlot renders the box plot in the given format to w.
func WritePlot(w io.Writer, r *Report, format string) error {
	p, err := newPlot(r)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return errors.Wrapf(err, "plot format %s", format)
	}
	_, err = wt.WriteTo(w)
	return err
}
