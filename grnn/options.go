package grnn

import (
	"github.com/YuminosukeSato/errest/pkg/log"
)

// Option configures a GRNN.
type Option func(*GRNN)

// WithSigmaRange sets the bounds of the scale grid. Invalid bounds are
// reported by TrainAndPredict.
func WithSigmaRange(low, high float64) Option {
	return func(g *GRNN) {
		g.sigmaLow = low
		g.sigmaHigh = high
	}
}

// WithGridPoints sets how many geometrically spaced scales are tried.
func WithGridPoints(k int) Option {
	return func(g *GRNN) {
		g.gridPoints = k
	}
}

// WithLogger sets the logger for fit records.
func WithLogger(l log.Logger) Option {
	return func(g *GRNN) {
		g.logger = l
	}
}
