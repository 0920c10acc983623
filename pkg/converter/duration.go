package converter

// Duration token constants
const (
	// GraceToken represents a nearly zero duration
	GraceToken = 79
	// SustainToken represents a long duration (approx 6 seconds at the assumed tempo)
	SustainToken = 512

	graceThreshold   = 10
	sustainThreshold = 500
	ticksPerToken    = 10
)

// DurationToken quantizes a tick delta between note onsets into a coarse
// integer duration code. Deltas under 10 ticks become GraceToken, deltas
// over 500 become SustainToken, and everything in between scales linearly
// into buckets of 10 ticks (tokens 1-50).
//
// Negative deltas can occur with out-of-order event timings; they are
// clamped to zero so they quantize as grace notes instead of producing a
// nonsensical negative token.
func DurationToken(delta int64) int {
	if delta < 0 {
		delta = 0
	}
	if delta < graceThreshold {
		return GraceToken
	}
	if delta > sustainThreshold {
		return SustainToken
	}
	return int(delta / ticksPerToken)
}
