package converter

import (
	"fmt"
	"strings"
)

// ordinalWords caps the output at seven lines; longer melodies are rejected
// with ErrBarCountExceeded instead of indexing out of range.
var ordinalWords = [...]string{
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
}

// MaxBars is the maximum number of bars the SC format can express
const MaxBars = len(ordinalWords)

// ErrBarCountExceeded is returned when a melody segments into more bars
// than the SC line numbering supports.
var ErrBarCountExceeded = fmt.Errorf("melody exceeds %d bars", MaxBars)

// FormatSC renders segmented bars and their lyric lines as SC text:
//
//	Total <N> lines.
//	The <ordinal> line: [<lyric>, ]<Name>,<Dur> | <Name>,<Dur> | ...,
//
// Lyrics are consumed front-to-back via an index; the caller's slice is
// never modified. Bars beyond the lyric count render without a lyric
// segment.
func FormatSC(bars []Bar, lyrics []string) (string, error) {
	if len(bars) > MaxBars {
		return "", fmt.Errorf("cannot format %d bars: %w", len(bars), ErrBarCountExceeded)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total %d lines.\n", len(bars))

	next := 0
	for i, bar := range bars {
		tokens := make([]string, len(bar))
		for j, tok := range bar {
			tokens[j] = fmt.Sprintf("<%s>,<%d>", tok.Name, tok.Duration)
		}
		line := strings.Join(tokens, " | ")

		if next < len(lyrics) {
			fmt.Fprintf(&b, "The %s line: %s, %s,\n", ordinalWords[i], lyrics[next], line)
			next++
		} else {
			fmt.Fprintf(&b, "The %s line: %s,\n", ordinalWords[i], line)
		}
	}

	return b.String(), nil
}
