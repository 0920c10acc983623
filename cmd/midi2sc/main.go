// Package main is the entry point for the midi2sc CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/midi2sc/pkg/api"
	"github.com/james-see/midi2sc/pkg/converter"
	"github.com/james-see/midi2sc/pkg/converter/lyrics"
	"github.com/james-see/midi2sc/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile     string
	lyricsFile     string
	lyricsFromMIDI bool
	ticksPerBar    int64
	absoluteTime   bool
	serverPort     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "midi2sc",
	Short: "Convert MIDI melodies to the SC lyric-melody text format",
	Long: `midi2sc converts a single-voice MIDI file into SC text: one line per
heuristic bar, each pairing a lyric line with note-name/duration tokens.

Examples:
  midi2sc convert melody.mid -o melody.sc --lyrics verse.txt
  midi2sc convert melody.mid --lyrics-from-midi
  midi2sc convert melody.mid --ticks-per-bar 960 --absolute-time
  midi2sc tui
  midi2sc serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var convertCmd = &cobra.Command{
	Use:   "convert <input.mid>",
	Short: "Convert a MIDI file to SC text",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .sc file path")
	convertCmd.Flags().StringVarP(&lyricsFile, "lyrics", "l", "", "Text file with one lyric line per melody line")
	convertCmd.Flags().BoolVar(&lyricsFromMIDI, "lyrics-from-midi", false, "Extract lyric meta events from the MIDI file")
	convertCmd.Flags().Int64Var(&ticksPerBar, "ticks-per-bar", converter.DefaultTicksPerBar, "Ticks per bar used as the segmentation trigger")
	convertCmd.Flags().BoolVar(&absoluteTime, "absolute-time", false, "Segment by cumulative tick position instead of raw delta times")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func getOutputPath(input string) string {
	if outputFile != "" {
		return outputFile
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".sc"
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := getOutputPath(input)

	conv := converter.New(converter.Options{
		TicksPerBar:  ticksPerBar,
		AbsoluteTime: absoluteTime,
	})

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	s, err := converter.ReadSMF(data)
	if err != nil {
		return err
	}

	var lyricLines []string
	switch {
	case lyricsFile != "":
		lyricLines, err = lyrics.LoadFile(lyricsFile)
		if err != nil {
			return err
		}
	case lyricsFromMIDI:
		lyricLines = lyrics.ExtractSMF(s)
	}

	result, err := conv.ConvertSMF(s, lyricLines)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(result), 0644); err != nil {
		return err
	}

	fmt.Printf("Converted %s -> %s\n", input, output)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
