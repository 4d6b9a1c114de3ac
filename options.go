package visitparam

import (
	"errors"
	"log/slog"

	"github.com/arloliu/visitparam/internal/options"
)

// DefaultMinRowsPerWorker is the smallest row range handed to one worker when
// parallel extraction is enabled.
const DefaultMinRowsPerWorker = 4096

// Option configures an Engine.
type Option = options.Option[*Engine]

// WithLogger sets the logger used for per-batch debug records and rejected
// configurations. A nil logger restores the default, which discards output.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(e *Engine) {
		if logger == nil {
			logger = discardLogger()
		}
		e.logger = logger
	})
}

// WithParallelism splits column extractions into at most n independent row
// ranges processed concurrently. n == 1, the default, disables splitting.
func WithParallelism(n int) Option {
	return options.New(func(e *Engine) error {
		if n < 1 {
			return errors.New("parallelism must be at least 1")
		}
		e.parallelism = n

		return nil
	})
}

// WithMinRowsPerWorker sets the smallest row range worth a separate worker.
func WithMinRowsPerWorker(rows int) Option {
	return options.New(func(e *Engine) error {
		if rows < 1 {
			return errors.New("min rows per worker must be at least 1")
		}
		e.minRowsPerWorker = rows

		return nil
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
