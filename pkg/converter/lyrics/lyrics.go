// Package lyrics loads lyric lines for pairing with segmented melodies
package lyrics

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"
)

// LoadFile reads lyric lines from a plain text file, one line per melody
// line. Leading/trailing whitespace is trimmed and blank lines are skipped.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lyrics file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lyrics file: %w", err)
	}

	return lines, nil
}

// ExtractSMF collects lyric meta events embedded in a MIDI file, in track
// order. Syllable fragments within a track are joined into one line per
// track; carriage returns and line feeds inside lyric events split lines,
// matching how karaoke-style files mark phrase ends.
func ExtractSMF(s *smf.SMF) []string {
	var lines []string

	for _, track := range s.Tracks {
		var current strings.Builder

		flush := func() {
			line := strings.TrimSpace(current.String())
			if line != "" {
				lines = append(lines, line)
			}
			current.Reset()
		}

		for _, ev := range track {
			var lyric string
			if !ev.Message.GetMetaLyric(&lyric) {
				continue
			}

			for _, r := range lyric {
				if r == '\r' || r == '\n' {
					flush()
					continue
				}
				current.WriteRune(r)
			}
		}

		flush()
	}

	return lines
}
