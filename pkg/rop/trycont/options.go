package trycont

import (
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
)

type Option func(*config)

type config struct {
	logger  *slog.Logger
	onError func(index int, err error)
}

func newConfig(opts []Option) *config {
	cfg := &config{
		logger: slogx.NewBuilder().Silent().Logger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger logs the capture of an error and the end of each run at
// debug level.
func WithLogger(log *slog.Logger) Option {
	return func(cfg *config) {
		if log != nil {
			cfg.logger = log
		}
	}
}

// WithOnError registers a hook that is called once, when the first error
// is captured, with the position of the failing element in the underlying
// sequence.
func WithOnError(onError func(index int, err error)) Option {
	return func(cfg *config) {
		cfg.onError = onError
	}
}
