// Package measure implements the alternate measurement mode entered
// when gpio.ModeSelect.Read reports false at startup: a diagonal-address
// access-time stress loop, classified against a caller-supplied
// Threshold rather than the original's single hard-coded calibration
// constant.
package measure
