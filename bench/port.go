package bench

import (
	"encoding/binary"

	"github.com/trevor-makes/avr-dram-tester/gpio"
)

// The methods below implement gpio.Port against the jig's frame
// protocol. Each simply encodes its arguments into a command frame.
// gpio.Port's methods (mirroring the real pin-level interface they
// abstract) have no error return, so errors from the underlying
// transport are not surfaced here: a transport failure instead panics,
// the same way a real platform's bit-banged GPIO write has no failure
// mode to report either — see DESIGN.md.

var _ gpio.Port = (*Conn)(nil)

func (c *Conn) fireAndForget(cmd byte, payload []byte) {
	if err := c.sendCommand(cmd, payload); err != nil {
		panic(err)
	}
}

// -- gpio.AddressPort --

func (c *Conn) SetLow(b byte) {
	c.fireAndForget(cmdSetLow, []byte{b})
}

func (c *Conn) SetHigh(bit bool) {
	c.fireAndForget(cmdSetHigh, []byte{boolByte(bit)})
}

// -- gpio.ControlPort --

func (c *Conn) Set(s gpio.ControlState) {
	c.fireAndForget(cmdSetControl, []byte{byte(s)})
}

// -- gpio.DataPort --

func (c *Conn) SetDin(bit bool) {
	c.fireAndForget(cmdSetDin, []byte{boolByte(bit)})
}

func (c *Conn) Dout() bool {
	resp, err := c.query(cmdDout, nil, 1)
	if err != nil {
		panic(err)
	}
	return resp[0] != 0
}

// -- gpio.Indicator --

func (c *Conn) SetIndicator(green, red bool) {
	c.fireAndForget(cmdSetIndicator, []byte{boolByte(green), boolByte(red)})
}

// -- gpio.ModeSelect --

func (c *Conn) Read() bool {
	resp, err := c.query(cmdModeSelect, nil, 1)
	if err != nil {
		panic(err)
	}
	return resp[0] != 0
}

// -- gpio.PowerDelay --

func (c *Conn) Wait500us() {
	c.fireAndForget(cmdWait500us, nil)
}

// -- gpio.CaptureTimer --

func (c *Conn) Start() {
	c.fireAndForget(cmdCaptureStart, nil)
}

func (c *Conn) Capture() (count uint32, ok bool) {
	resp, err := c.query(cmdCapture, nil, 5)
	if err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint32(resp[:4]), resp[4] != 0
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
