package canvas

import "log/slog"

// options holds optional configuration for a Canvas.
type options struct {
	session Session
	logger  *slog.Logger
}

// Option configures a Canvas.
type Option func(*options)

// WithSession binds s immediately, as CreateSession would, but without
// opening a root layer. Use it for sessions whose surface already matches
// the canvas size.
func WithSession(s Session) Option {
	return func(o *options) {
		o.session = s
	}
}

// WithLogger sets a logger for this canvas only, overriding the
// package-wide logger installed with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{}
}
