package indicator

import (
	"github.com/trevor-makes/avr-dram-tester/bus"
	"github.com/trevor-makes/avr-dram-tester/gpio"
)

// Controller drives a gpio.Indicator and the ERR line of a
// gpio.ControlPort from an internal State, and implements march.Reporter.
type Controller struct {
	indicator gpio.Indicator
	control   gpio.ControlPort
	logger    Logger
	state     State
}

// New returns a Controller in the unlatched (green=false, red=false)
// state.
func New(indicator gpio.Indicator, control gpio.ControlPort, opts ...Option) *Controller {
	c := &Controller{indicator: indicator, control: control}
	for _, opt := range opts {
		opt(c)
	}
	c.indicator.SetIndicator(false, false)
	return c
}

// Fail latches red, clears green, pulses ERR low for one cycle, and —
// if a Logger was supplied — logs the faulting address at debug level.
// It implements march.Reporter.
func (c *Controller) Fail(addr bus.Address) {
	c.state.setFail()
	c.indicator.SetIndicator(c.state.Green, c.state.Red)

	c.control.Set(gpio.ERR)
	c.control.Set(gpio.Idle)

	if c.logger != nil {
		c.logger.Debug("cell verification failed", "row", addr.Row, "col", addr.Col, "rowHigh", addr.RowHigh, "colHigh", addr.ColHigh)
	}
}

// Pass latches green, unless red has already latched. It implements
// march.Reporter.
func (c *Controller) Pass() {
	c.state.setPass()
	c.indicator.SetIndicator(c.state.Green, c.state.Red)
}

// State returns the controller's current latched LED state.
func (c *Controller) State() State { return c.state }
