package inspector

import "go.uber.org/zap"

// Option configures an Inspector.
type Option func(*options)

type options struct {
	log     *zap.Logger
	overlay OverlayConfig
	repaint func()
}

func defaultOptions() options {
	return options{
		log:     zap.NewNop(),
		overlay: DefaultOverlayConfig(),
		repaint: func() {},
	}
}

// WithLogger sets the logger used for bind and command events.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithOverlayConfig sets the overlay appearance.
func WithOverlayConfig(cfg OverlayConfig) Option {
	return func(o *options) {
		o.overlay = cfg
	}
}

// WithRepaint sets the callback used to request a redraw after the state
// changes.
func WithRepaint(fn func()) Option {
	return func(o *options) {
		if fn != nil {
			o.repaint = fn
		}
	}
}
