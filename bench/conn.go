package bench

import (
	"fmt"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// baudRates are tried in descending order when dialing, the same
// strategy the teacher library this transport is derived from uses
// for a device that may be running at an uncertain rate.
var baudRates = []int{115200, 57600, 38400, 19200, 9600}

// Conn is a gpio.Port backed by a USB-serial connection to a test jig.
type Conn struct {
	port    serial.Port
	timeout time.Duration
}

// DetectJig returns the first USB serial port's name, for a jig with
// no distinguishing serial number to match against.
func DetectJig() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", err
	}
	for _, p := range ports {
		if p.IsUSB {
			return p.Name, nil
		}
	}
	return "", ErrNoJigFound
}

// Dial opens a Conn to the jig at portName, trying each of baudRates
// until one succeeds. If portName is empty, it is discovered with
// DetectJig first.
func Dial(portName string) (*Conn, error) {
	var err error
	if portName == "" {
		portName, err = DetectJig()
		if err != nil {
			return nil, err
		}
	}

	var port serial.Port
	for _, baud := range baudRates {
		port, err = serial.Open(portName, &serial.Mode{
			BaudRate: baud,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		})
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("bench: failed to open %s at any baud rate: %w", portName, err)
	}

	return &Conn{port: port, timeout: time.Second}, nil
}

// Close closes the underlying serial port.
func (c *Conn) Close() error {
	return c.port.Close()
}

func (c *Conn) sendCommand(cmd byte, payload []byte) error {
	frame := encodeFrame(cmd, payload)
	sent := 0
	for sent < len(frame) {
		n, err := c.port.Write(frame[sent:])
		if err != nil {
			return &IOError{Command: cmd, Err: err}
		}
		sent += n
	}
	return nil
}

// query sends a command and reads back the jig's response frame,
// returning its payload. The minimum response frame is 5 bytes
// (SOP, cmd, len=0, checksum, EOP); responses grow by their payload
// length beyond that.
func (c *Conn) query(cmd byte, payload []byte, responseSize int) ([]byte, error) {
	if err := c.sendCommand(cmd, payload); err != nil {
		return nil, err
	}

	want := 5 + responseSize
	buf := make([]byte, want)
	read := 0
	for read < want {
		n, err := c.port.Read(buf[read:])
		if err != nil {
			return nil, &IOError{Command: cmd, Err: err}
		}
		if n <= 0 {
			return nil, &IOError{Command: cmd, Err: fmt.Errorf("read returned %d bytes", n)}
		}
		read += n
	}

	_, respPayload, err := decodeFrame(buf)
	if err != nil {
		return nil, err
	}
	return respPayload, nil
}
