package converter

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatSC(t *testing.T) {
	bars := []Bar{
		{{Name: "C4", Duration: 79}, {Name: "E4", Duration: 48}},
		{{Name: "G4", Duration: 79}},
	}
	lyrics := []string{"la la"}

	result, err := FormatSC(bars, lyrics)
	if err != nil {
		t.Fatalf("FormatSC() error = %v", err)
	}

	expected := "Total 2 lines.\n" +
		"The first line: la la, <C4>,<79> | <E4>,<48>,\n" +
		"The second line: <G4>,<79>,\n"

	if result != expected {
		t.Errorf("FormatSC() =\n%q\nwant\n%q", result, expected)
	}
}

func TestFormatSCLyricsNotConsumed(t *testing.T) {
	bars := []Bar{
		{{Name: "C4", Duration: 79}},
		{{Name: "D4", Duration: 12}},
	}
	lyrics := []string{"one", "two"}

	if _, err := FormatSC(bars, lyrics); err != nil {
		t.Fatalf("FormatSC() error = %v", err)
	}

	// The caller's slice must survive the call untouched
	if len(lyrics) != 2 || lyrics[0] != "one" || lyrics[1] != "two" {
		t.Errorf("lyrics slice modified: %v", lyrics)
	}
}

func TestFormatSCFewerLyricsThanBars(t *testing.T) {
	bars := []Bar{
		{{Name: "C4", Duration: 1}},
		{{Name: "D4", Duration: 2}},
		{{Name: "E4", Duration: 3}},
	}
	lyrics := []string{"only line"}

	result, err := FormatSC(bars, lyrics)
	if err != nil {
		t.Fatalf("FormatSC() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("output has %d lines, want 4", len(lines))
	}

	if lines[1] != "The first line: only line, <C4>,<1>," {
		t.Errorf("line 1 = %q, want lyric prefix", lines[1])
	}
	if lines[2] != "The second line: <D4>,<2>," {
		t.Errorf("line 2 = %q, want no lyric prefix", lines[2])
	}
	if lines[3] != "The third line: <E4>,<3>," {
		t.Errorf("line 3 = %q, want no lyric prefix", lines[3])
	}
}

func TestFormatSCBarCountExceeded(t *testing.T) {
	bars := make([]Bar, MaxBars+1)
	for i := range bars {
		bars[i] = Bar{{Name: "C4", Duration: 1}}
	}

	_, err := FormatSC(bars, nil)
	if err == nil {
		t.Fatal("FormatSC() expected error for 8 bars, got nil")
	}
	if !errors.Is(err, ErrBarCountExceeded) {
		t.Errorf("error = %v, want ErrBarCountExceeded", err)
	}
}

func TestFormatSCMaxBars(t *testing.T) {
	bars := make([]Bar, MaxBars)
	for i := range bars {
		bars[i] = Bar{{Name: "G6", Duration: 50}}
	}

	result, err := FormatSC(bars, nil)
	if err != nil {
		t.Fatalf("FormatSC() error = %v", err)
	}
	if !strings.HasPrefix(result, "Total 7 lines.\n") {
		t.Errorf("header = %q, want Total 7 lines.", strings.SplitN(result, "\n", 2)[0])
	}
	if !strings.Contains(result, "The seventh line: <G6>,<50>,\n") {
		t.Errorf("missing seventh line in %q", result)
	}
}

func TestFormatSCEmpty(t *testing.T) {
	result, err := FormatSC(nil, nil)
	if err != nil {
		t.Fatalf("FormatSC() error = %v", err)
	}
	if result != "Total 0 lines.\n" {
		t.Errorf("FormatSC() = %q, want header only", result)
	}
}
