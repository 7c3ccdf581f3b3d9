package bus

import (
	"github.com/trevor-makes/avr-dram-tester/cycle"
	"github.com/trevor-makes/avr-dram-tester/gpio"
)

// Controller drives a gpio.Port through the DRAM's three bus cycles. It
// keeps exactly one piece of state beyond the port itself: a monotonic
// refresh-row counter used only by the legacy Refresh path (see Refresh).
type Controller struct {
	port       gpio.Port
	refreshRow byte
}

// New wraps port in a Controller, idle.
func New(port gpio.Port) *Controller {
	c := &Controller{port: port}
	c.port.Set(gpio.Idle)
	return c
}

// SetDin sets the DIN line. March steps call this once before a pass;
// it is not re-set per address.
func (c *Controller) SetDin(bit bool) {
	c.port.SetDin(bit)
}

// Read performs a datasheet-timed read cycle and returns the sampled bit.
func (c *Controller) Read(addr Address) ReadSample {
	return c.read(addr, cycle.Wait3)
}

// ReadFast performs a read cycle with only the minimum compile-time
// delay budget between CAS and the DOUT sample. It is used by the
// alternate measurement mode to probe the access-time boundary; it does
// not satisfy the datasheet's tCAC margin the way Read does.
func (c *Controller) ReadFast(addr Address) ReadSample {
	return c.read(addr, cycle.Wait1)
}

func (c *Controller) read(addr Address, settle func()) ReadSample {
	// 1. Strobe row.
	c.port.SetLow(addr.Row)
	c.port.SetHigh(addr.RowHigh)
	// 2. Assert RAS and the test-only RE together.
	c.port.Set(gpio.RAS | gpio.RE)
	// 3. Strobe column.
	c.port.SetLow(addr.Col)
	c.port.SetHigh(addr.ColHigh)
	// 4. Assert CAS, keeping RAS and RE asserted.
	c.port.Set(gpio.RAS | gpio.RE | gpio.CAS)
	// 5. Wait for tCAC (plus, for Read, one cycle of input latency).
	settle()
	// 6. Sample DOUT.
	sample := ReadSample(c.port.Dout())
	// 7. Return to idle in a single store.
	c.port.Set(gpio.Idle)
	return sample
}

// Write performs a write cycle. DIN must already be set to the intended
// value via SetDin; it is not touched here.
func (c *Controller) Write(addr Address) {
	// 1. Strobe row.
	c.port.SetLow(addr.Row)
	c.port.SetHigh(addr.RowHigh)
	// 2. Assert RAS and WE together (early write).
	c.port.Set(gpio.RAS | gpio.WE)
	// 3. Strobe column.
	c.port.SetLow(addr.Col)
	c.port.SetHigh(addr.ColHigh)
	// 4. Assert CAS, keeping RAS and WE asserted; DIN is already stable.
	c.port.Set(gpio.RAS | gpio.WE | gpio.CAS)
	// 5. Wait for tCAS.
	cycle.Wait1()
	// 6. Return to idle.
	c.port.Set(gpio.Idle)
}

// Refresh issues an explicit RAS-only cycle at the next row of the
// internal refresh-row counter, advancing it. This is the legacy
// mechanism described in the original specification's design notes;
// package march never calls it, since the adopted design gets refresh
// coverage for free from the March address-counter order (see the
// package march documentation). Refresh is kept for API completeness and for tests of
// the legacy path.
func (c *Controller) Refresh() {
	c.port.SetLow(c.refreshRow)
	c.port.Set(gpio.RAS)
	cycle.Wait2()
	c.port.Set(gpio.Idle)
	c.refreshRow++
}
