package converter

// Note name constants
const (
	// MinNote and MaxNote bound the supported melodic range (C4 through G6)
	MinNote = 60
	MaxNote = 91

	// UnknownNote is returned for note numbers outside the supported range.
	// It appears in-band in output; callers must tolerate it.
	UnknownNote = "Unknown"
)

// noteNames covers MIDI numbers 60-91, sharps only
var noteNames = [...]string{
	"C4", "C#4", "D4", "D#4", "E4", "F4", "F#4", "G4",
	"G#4", "A4", "A#4", "B4", "C5", "C#5", "D5", "D#5",
	"E5", "F5", "F#5", "G5", "G#5", "A5", "A#5", "B5",
	"C6", "C#6", "D6", "D#6", "E6", "F6", "F#6", "G6",
}

// NoteName returns the display name for a MIDI note number (e.g. 60 -> "C4").
// Numbers outside [MinNote, MaxNote] yield UnknownNote rather than an error.
func NoteName(note int) string {
	if note < MinNote || note > MaxNote {
		return UnknownNote
	}
	return noteNames[note-MinNote]
}
