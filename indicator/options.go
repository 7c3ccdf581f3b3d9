package indicator

// Option configures a Controller at construction time.
type Option func(*Controller)

// WithLogger sets a logger for ambient diagnostics. It is never
// required: a Controller with no logger still latches LED state and
// pulses ERR exactly the same way.
//
// Example:
//
//	ctl := indicator.New(port, port, indicator.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}
