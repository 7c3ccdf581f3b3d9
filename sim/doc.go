// Package sim implements an in-memory DRAM array that satisfies
// gpio.Port, for use as the substrate of this module's property and
// scenario tests. It emulates the multiplexed row/column latching a real
// DRAM performs at the falling edge of RAS and CAS, so the same
// bus.Controller code that would drive real silicon exercises it
// correctly: the address on the bus when RAS falls is latched as the
// row, and the address on the bus when CAS falls is latched as the
// column.
//
// DRAM additionally supports Fault injection (stuck-at and coupling
// faults) so the March engine's fault-detection behavior can be checked
// against known-bad cells without real hardware.
package sim
