package march

// StepObserver is called once per March step, after that step's
// quadrant sweep(s) finish, naming the step and whether any cell in it
// failed. It exists for diagnostics (cmd/benchconsole's step-by-step
// display) and is never required by the core test path.
type StepObserver func(name string, dir Direction, failed bool)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithStepObserver sets a callback invoked after each of the six
// steps in an iteration.
//
// Example:
//
//	eng := march.New(c, kind, reporter, march.WithStepObserver(func(name string, dir march.Direction, failed bool) {
//	    fmt.Printf("%s (%s): failed=%v\n", name, dir, failed)
//	}))
func WithStepObserver(observer StepObserver) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}
