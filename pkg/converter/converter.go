package converter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Format represents a file format
type Format string

const (
	FormatMIDI    Format = "midi"
	FormatSCText  Format = "sc"
	FormatUnknown Format = "unknown"
)

// DetectFormat detects the format of a file based on extension
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mid", ".midi":
		return FormatMIDI
	case ".sc", ".txt":
		return FormatSCText
	default:
		return FormatUnknown
	}
}

// DetectFormatFromContent detects format from file content
func DetectFormatFromContent(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}

	// Check for MIDI file signature "MThd"
	if string(data[:4]) == "MThd" {
		return FormatMIDI
	}

	// SC output always opens with its header line
	if bytes.HasPrefix(data, []byte("Total ")) {
		return FormatSCText
	}

	return FormatUnknown
}

// ReadSMF parses raw MIDI bytes into an SMF structure
func ReadSMF(data []byte) (*smf.SMF, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIDI: %w", err)
	}
	return s, nil
}

// Convert parses MIDI data and renders it as SC text paired with the given
// lyric lines. The lyrics slice is read-only; it is not drained or reordered.
func (c *Converter) Convert(data []byte, lyrics []string) (string, error) {
	s, err := ReadSMF(data)
	if err != nil {
		return "", err
	}
	return c.ConvertSMF(s, lyrics)
}

// ConvertSMF renders an already-parsed SMF as SC text
func (c *Converter) ConvertSMF(s *smf.SMF, lyrics []string) (string, error) {
	bars := c.SegmentSMF(s)
	return FormatSC(bars, lyrics)
}

// ConvertFile converts a MIDI file to an SC text file
func (c *Converter) ConvertFile(inputPath, outputPath string, lyrics []string) error {
	if DetectFormat(outputPath) != FormatSCText {
		return errors.New("output path must have a .sc or .txt extension")
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	inputFormat := DetectFormat(inputPath)
	if inputFormat == FormatUnknown {
		inputFormat = DetectFormatFromContent(data)
	}
	if inputFormat != FormatMIDI {
		return fmt.Errorf("unsupported input format: %s", inputFormat)
	}

	text, err := c.Convert(data, lyrics)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// GetSupportedConversions returns a list of supported conversion paths
func GetSupportedConversions() []string {
	return []string{
		"midi -> sc",
	}
}
