// Package indicator drives the two pass/fail LEDs and the ERR pulse
// line from the result stream march.Engine produces, and optionally
// emits ambient diagnostics through a caller-supplied Logger.
package indicator
