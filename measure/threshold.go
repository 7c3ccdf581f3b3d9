package measure

// Band names the three access-time classifications a sample falls
// into, reported by the caller blinking the green LED 1, 2, or 3 times.
type Band int

const (
	BandFast Band = iota
	BandNominal
	BandSlow
)

// Blinks is the number of green-LED blinks a caller reports between
// diagonal sweeps for this band.
func (b Band) Blinks() int {
	switch b {
	case BandFast:
		return 1
	case BandSlow:
		return 3
	default:
		return 2
	}
}

// Threshold is the caller-supplied calibration a captured cycle count
// is classified against. The original hard-codes a single calibration
// integer; this module exposes both boundaries as named values instead
// of one hidden constant, so a caller can calibrate per board.
type Threshold struct {
	// Fast is the inclusive upper bound, in captured timer ticks, of the
	// fast band.
	Fast uint32
	// Slow is the inclusive lower bound of the slow band. Counts strictly
	// between Fast and Slow are nominal.
	Slow uint32
}

// DefaultThreshold is a starting point suitable for the timing budget
// the cycle package's Wait1 delay (the one ReadFast uses) establishes;
// a real board should calibrate its own values.
var DefaultThreshold = Threshold{Fast: 2, Slow: 6}

// Classify bands count against t.
func (t Threshold) Classify(count uint32) Band {
	switch {
	case count <= t.Fast:
		return BandFast
	case count >= t.Slow:
		return BandSlow
	default:
		return BandNominal
	}
}
