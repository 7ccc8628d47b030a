package linear

import (
	"github.com/YuminosukeSato/errest/pkg/log"
)

// Option is a function that configures SVDRegression
type Option func(*SVDRegression)

// WithSingularLimit sets the cut-off ratio: singular values at or below
// limit times the largest one are discarded. Negative values are treated
// as zero.
func WithSingularLimit(limit float64) Option {
	return func(lr *SVDRegression) {
		lr.limit = max(limit, 0)
	}
}

// WithLogger sets the logger for fit records
func WithLogger(l log.Logger) Option {
	return func(lr *SVDRegression) {
		lr.logger = l
	}
}
