package gpio

// ControlState is a composite store of the active-low control lines RAS,
// CAS, WE, RE, and ERR. A bit set here means the line is asserted; the
// zero value, Idle, means every line is idle (high at the platform
// boundary).
type ControlState uint8

// Control line bits. A single ControlState value is always written with a
// single call to ControlPort.Set — no two lines may change across
// separate stores.
const (
	RAS ControlState = 1 << iota
	CAS
	WE
	RE
	ERR
)

// Idle is the control state between bus cycles: every line deasserted.
const Idle ControlState = 0

// AddressPort drives the multiplexed row/column address bus.
type AddressPort interface {
	// SetLow drives A0..A7.
	SetLow(b byte)
	// SetHigh drives A8, the extra address bit used by 256K parts. It is
	// don't-care on a 64K part.
	SetHigh(bit bool)
}

// ControlPort drives RAS/CAS/WE/RE/ERR as a single composite store.
type ControlPort interface {
	Set(s ControlState)
}

// DataPort drives DIN and samples DOUT.
type DataPort interface {
	SetDin(bit bool)
	Dout() bool
}

// Indicator drives the two pass/fail LEDs.
type Indicator interface {
	SetIndicator(green, red bool)
}

// ModeSelect is read once at startup. Read returns true to select the
// March C- test mode, or false (the line pulled low) to select the
// alternate measurement mode.
type ModeSelect interface {
	Read() bool
}

// PowerDelay is a one-shot blocking delay with at least 500us granularity,
// used once at startup to let the DRAM's bias generator settle.
type PowerDelay interface {
	Wait500us()
}

// CaptureTimer is used only by the alternate measurement mode. Start arms
// the timer against a reference edge; Capture returns the elapsed cycle
// count since Start, or ok=false if the timer overflowed before the edge
// it was waiting for arrived.
type CaptureTimer interface {
	Start()
	Capture() (count uint32, ok bool)
}

// Port composes every interface a platform must implement to stand in for
// the DRAM tester's pins.
type Port interface {
	AddressPort
	ControlPort
	DataPort
	Indicator
	ModeSelect
	PowerDelay
	CaptureTimer
}
