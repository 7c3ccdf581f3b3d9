// Package bus implements the cycle-accurate DRAM bus driver: row/column
// multiplexed address strobing, the read, write, and refresh cycles, and
// the fixed inter-signal delays their timing requires. It has no failure
// paths of its own — it is pure I/O over a gpio.Port. Verification
// failures are produced by package march, one layer up.
package bus
