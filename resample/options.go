package resample

import (
	"github.com/YuminosukeSato/errest/pkg/log"
)

// Option configures an estimator call.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger used for debug records. The package default
// from log.GetLogger is used otherwise.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.GetLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNopLogger()
	}
	return o
}
