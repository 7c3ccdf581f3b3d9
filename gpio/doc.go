// Package gpio defines the platform boundary consumed by the rest of this
// module: a small set of composable interfaces standing in for the pins a
// microcontroller would dedicate to driving a DRAM chip directly.
//
// # Hardware Independence
//
// Nothing in this package talks to real hardware. Callers supply a
// concrete Port — package sim's in-memory DRAM model for tests, package
// bench's serial-jig transport for bench work against real silicon, or a
// caller's own implementation for a specific board. The physical
// pin-to-port mapping, LED styling, and the timer backing Wait500us are
// deliberately left to that implementation.
//
// # Wire-level semantics
//
// ControlState is a bitmask of asserted (active) lines. Idle is the zero
// value: at the platform boundary RAS, CAS, WE, RE, and ERR are active-low
// and sit high when idle, but callers of this package only ever reason in
// terms of "asserted" or "idle" — translating that into the active-low
// signal actually driven is a Port implementation's job.
package gpio
