// Package worker runs the scoring engine over queued district jobs.
package worker

import (
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

// Option applies a configuration option to the Worker.
type Option func(*Worker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *Worker) {
		if name != "" {
			w.name = name
			w.logger = logger.Get().Named(name)
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(log logger.Logger) Option {
	return func(w *Worker) {
		if log != nil {
			w.logger = log
		}
	}
}

// WithExcludeFunc sets the callback invoked for excluded districts.
func WithExcludeFunc(fn ExcludeFunc) Option {
	return func(w *Worker) {
		if fn != nil {
			w.exclude = fn
		}
	}
}
