package subject

import "log/slog"

type config struct {
	log *slog.Logger
}

type Option func(*config)

// WithLogger sets the logger used for subscriber lifecycle events.
// They are logged at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

func newConfig(opts []Option) config {
	c := config{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
