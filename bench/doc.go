// Package bench implements a gpio.Port that reaches a physical test
// jig — an auxiliary microcontroller that bit-bangs the pins named by
// package gpio — over a USB-serial link, so the same bus/march/chip/
// measure code this module's core uses against sim.DRAM can also drive
// real silicon on a bench.
//
// This package is bench tooling, not a feature of the device under
// test: the DRAM itself speaks no protocol of its own.
package bench
