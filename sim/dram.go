package sim

import "github.com/trevor-makes/avr-dram-tester/gpio"

// DRAM is an in-memory model of a 4164-family (64K) or 41256-family (256K)
// part. It implements gpio.Port directly, so a bus.Controller can drive it
// exactly as it would drive real silicon.
type DRAM struct {
	// HonorsA8 selects whether the model treats the A8 line as a real
	// address bit (256K behavior) or ignores it, aliasing every (row,
	// col) cell regardless of the high bits (64K behavior).
	HonorsA8 bool

	cells  map[uint32]bool
	faults []Fault

	ctrl             gpio.ControlState
	addrLow          byte
	addrHigh         bool
	row, col         byte
	rowHigh, colHigh bool
	din              bool
	doutLatched      bool

	green, red bool
	errPulses  int

	modeSelect bool

	captureArmed bool
	captureTicks uint32
	captureFail  bool
}

// New returns an idle DRAM model. modeSelect is the value ModeSelect.Read
// will report (true selects March test mode).
func New(honorsA8, modeSelect bool) *DRAM {
	return &DRAM{
		HonorsA8:   honorsA8,
		cells:      make(map[uint32]bool),
		modeSelect: modeSelect,
	}
}

// -- gpio.AddressPort --

func (d *DRAM) SetLow(b byte)    { d.addrLow = b }
func (d *DRAM) SetHigh(bit bool) { d.addrHigh = bit }

// -- gpio.ControlPort --

// Set emulates the multiplexed latch: the address present on the bus at
// the moment RAS transitions low is captured as the row; the address
// present when CAS transitions low is captured as the column. A write is
// performed at the CAS edge if WE is asserted; a read is performed at the
// CAS edge if RE is asserted (this model, like the real chip, cares about
// the edge, not the level).
func (d *DRAM) Set(s gpio.ControlState) {
	wasRAS := d.ctrl&gpio.RAS != 0
	if s&gpio.RAS != 0 && !wasRAS {
		d.row, d.rowHigh = d.addrLow, d.addrHigh
	}

	wasCAS := d.ctrl&gpio.CAS != 0
	if s&gpio.CAS != 0 && !wasCAS {
		d.col, d.colHigh = d.addrLow, d.addrHigh
		addr := d.address()
		switch {
		case s&gpio.WE != 0:
			d.writeCell(addr, d.din)
		case s&gpio.RE != 0:
			d.doutLatched = d.readCell(addr)
		}
	}

	wasErr := d.ctrl&gpio.ERR != 0
	if s&gpio.ERR != 0 && !wasErr {
		d.errPulses++
	}

	d.ctrl = s
	if d.captureArmed {
		d.captureTicks++
	}
}

// -- gpio.DataPort --

func (d *DRAM) SetDin(bit bool) { d.din = bit }
func (d *DRAM) Dout() bool      { return d.doutLatched }

// -- gpio.Indicator --

func (d *DRAM) SetIndicator(green, red bool) { d.green, d.red = green, red }

// Indicator reports the model's last-written LED state, for assertions.
func (d *DRAM) Indicator() (green, red bool) { return d.green, d.red }

// -- gpio.ModeSelect --

func (d *DRAM) Read() bool { return d.modeSelect }

// -- gpio.PowerDelay --

func (d *DRAM) Wait500us() {}

// -- gpio.CaptureTimer --

func (d *DRAM) Start() {
	d.captureArmed = true
	d.captureTicks = 0
	d.captureFail = false
}

func (d *DRAM) Capture() (count uint32, ok bool) {
	d.captureArmed = false
	return d.captureTicks, !d.captureFail
}

// ForceCaptureOverflow makes the next Capture report a failed capture,
// for testing the measurement mode's overflow handling.
func (d *DRAM) ForceCaptureOverflow() { d.captureFail = true }

// ErrPulses returns the number of times the ERR line has been asserted
// (a falling edge of the active-low line) since the model was created,
// detected the same way RAS/CAS edges are: ERR rides on the same
// ControlState composite as the other control lines.
func (d *DRAM) ErrPulses() int { return d.errPulses }

func (d *DRAM) address() uint32 {
	row, col := d.row, d.col
	rowHigh, colHigh := d.rowHigh, d.colHigh
	if !d.HonorsA8 {
		rowHigh, colHigh = false, false
	}
	a := uint32(row) | uint32(col)<<8
	if rowHigh {
		a |= 1 << 16
	}
	if colHigh {
		a |= 1 << 17
	}
	return a
}
