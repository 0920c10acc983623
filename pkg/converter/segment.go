package converter

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

// SegmentSMF groups the note-on events of every track into bars. Tracks are
// segmented independently and their bar lists concatenated in file order;
// bars from different tracks are never merged by absolute time.
func (c *Converter) SegmentSMF(s *smf.SMF) []Bar {
	var bars []Bar
	for _, track := range s.Tracks {
		bars = append(bars, c.segmentTrack(track)...)
	}
	return bars
}

// segmentTrack walks a single track's events in order and cuts bars using
// the configured heuristic. The default mode reproduces the historical
// behavior: each event's raw delta-time field doubles as both the duration
// delta and the bar-boundary trigger, without accumulating an absolute
// position. Options.AbsoluteTime switches to true cumulative tick tracking.
func (c *Converter) segmentTrack(track smf.Track) []Bar {
	if c.opts.AbsoluteTime {
		return c.segmentAbsolute(track)
	}

	var bars []Bar
	var prevTime int64
	var bar Bar

	for _, ev := range track {
		t := int64(ev.Delta)
		msg := ev.Message

		// Note On: 0x9n nn vv with velocity > 0
		if len(msg) >= 3 {
			status := msg[0]
			if status >= 0x90 && status <= 0x9F && msg[2] > 0 {
				bar = append(bar, NoteToken{
					Name:     NoteName(int(msg[1])),
					Duration: DurationToken(t - prevTime),
				})

				// A delta at or past the bar length closes the current bar,
				// trigger note included.
				if t >= c.opts.TicksPerBar {
					bars = append(bars, bar)
					bar = nil
				}
			}
		}

		// Every event advances the reference time, not just note-ons
		prevTime = t
	}

	// Flush the final partial bar
	if len(bar) > 0 {
		bars = append(bars, bar)
	}

	return bars
}

// segmentAbsolute is the corrected segmentation mode: it accumulates the
// true tick position, computes durations as the distance from the previous
// event, and starts a new bar when a note lands in a later bar window.
// Windows are aligned to multiples of TicksPerBar from the track start.
func (c *Converter) segmentAbsolute(track smf.Track) []Bar {
	var bars []Bar
	var absTick, prevTick, barStart int64
	var bar Bar

	for _, ev := range track {
		absTick += int64(ev.Delta)
		msg := ev.Message

		if len(msg) >= 3 {
			status := msg[0]
			if status >= 0x90 && status <= 0x9F && msg[2] > 0 {
				if absTick-barStart >= c.opts.TicksPerBar {
					if len(bar) > 0 {
						bars = append(bars, bar)
						bar = nil
					}
					barStart = absTick - absTick%c.opts.TicksPerBar
				}

				bar = append(bar, NoteToken{
					Name:     NoteName(int(msg[1])),
					Duration: DurationToken(absTick - prevTick),
				})
			}
		}

		prevTick = absTick
	}

	if len(bar) > 0 {
		bars = append(bars, bar)
	}

	return bars
}
