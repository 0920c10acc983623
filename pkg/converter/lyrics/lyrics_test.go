package lyrics

import (
	"os"
	"path/filepath"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "verse.txt")

	content := "first line\n\n  second line  \n\nthird line\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	want := []string{"first line", "second line", "third line"}
	if len(lines) != len(want) {
		t.Fatalf("LoadFile() returned %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("LoadFile() expected error for missing file, got nil")
	}
}

func lyricEvent(delta uint32, text string) smf.Event {
	return smf.Event{Delta: delta, Message: smf.Message(smf.MetaLyric(text))}
}

func TestExtractSMF(t *testing.T) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)
	s.Tracks = []smf.Track{
		{
			lyricEvent(0, "Twin"),
			lyricEvent(120, "kle "),
			lyricEvent(120, "star\n"),
			lyricEvent(120, "how I won"),
			lyricEvent(120, "der"),
		},
	}

	lines := ExtractSMF(s)

	want := []string{"Twinkle star", "how I wonder"}
	if len(lines) != len(want) {
		t.Fatalf("ExtractSMF() returned %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExtractSMFPerTrack(t *testing.T) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)

	// Lyrics without newline markers form one line per track
	s.Tracks = []smf.Track{
		{lyricEvent(0, "verse one")},
		{lyricEvent(0, "verse "), lyricEvent(240, "two")},
	}

	lines := ExtractSMF(s)

	want := []string{"verse one", "verse two"}
	if len(lines) != len(want) {
		t.Fatalf("ExtractSMF() returned %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExtractSMFNoLyrics(t *testing.T) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)
	s.Tracks = []smf.Track{{}}

	if lines := ExtractSMF(s); len(lines) != 0 {
		t.Errorf("ExtractSMF() = %v, want empty", lines)
	}
}
