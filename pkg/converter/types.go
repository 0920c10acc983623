// Package converter converts MIDI melodies into the SC lyric-melody text format
package converter

// NoteEvent is a note-on extracted from a MIDI track
type NoteEvent struct {
	Note     uint8 // MIDI note number (0-127)
	Time     int64 // The event's track-local time field, in ticks
	Velocity uint8 // Velocity (1-127; zero-velocity note-ons are skipped)
}

// NoteToken is a rendered note: pitch name plus coarse duration code
type NoteToken struct {
	Name     string
	Duration int
}

// Bar is an ordered run of note tokens grouped by the segmentation heuristic.
// Each bar becomes one output line, paired with one lyric line.
type Bar []NoteToken

// Options controls a conversion
type Options struct {
	TicksPerBar  int64 // Bar-boundary trigger threshold (default 480)
	AbsoluteTime bool  // Segment by cumulative tick position instead of raw delta times
}

// DefaultTicksPerBar is the segmentation threshold used when Options.TicksPerBar is zero
const DefaultTicksPerBar = 480

// Converter performs MIDI to SC conversions
type Converter struct {
	opts Options
}

// New creates a new Converter with the given options
func New(opts Options) *Converter {
	if opts.TicksPerBar <= 0 {
		opts.TicksPerBar = DefaultTicksPerBar
	}
	return &Converter{opts: opts}
}

// Options returns the effective conversion options
func (c *Converter) Options() Options {
	return c.opts
}
