package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown mode")

// Settings are the startup options taken from the command line.
type Settings struct {
	Width  int
	Height int
	Mode   string
	Top    string
	Bottom string
	Seed   int64

	Output string
	Frames int
	Time   float64

	AudioFile string
	ExportDir string
	Verbose   bool
}

func NewSettings(args []string) (Settings, error) {
	var s Settings

	fs := flag.NewFlagSet("gradient-waves", flag.ContinueOnError)
	fs.IntVar(&s.Width, "width", CanvasWidth, "canvas width in pixels")
	fs.IntVar(&s.Height, "height", CanvasHeight, "canvas height in pixels")
	fs.StringVar(&s.Mode, "mode", "wave", "pattern: wave or static")
	fs.StringVar(&s.Top, "top", "#ff6496", "top gradient color")
	fs.StringVar(&s.Bottom, "bottom", "#3296ff", "bottom gradient color")
	fs.Int64Var(&s.Seed, "seed", 1, "noise seed")
	fs.StringVar(&s.Output, "out", "", "render to this file and exit")
	fs.IntVar(&s.Frames, "frames", 1, "frames to record with -out; more than one writes an animated PNG")
	fs.Float64Var(&s.Time, "time", 0, "animation time of the first frame")
	fs.StringVar(&s.AudioFile, "audio", "", "audio file to play on start")
	fs.StringVar(&s.ExportDir, "dir", ".", "directory for saved images")
	fs.BoolVar(&s.Verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return s, err
	}
	return s, s.Verify()
}

func (s *Settings) Verify() error {
	s.Width = max(s.Width, 1)
	s.Height = max(s.Height, 1)
	s.Frames = max(s.Frames, 1)
	s.Time = max(s.Time, 0)
	if s.ExportDir == "" {
		s.ExportDir = "."
	}

	s.Mode = strings.ToLower(strings.TrimSpace(s.Mode))
	switch s.Mode {
	case "wave", "static":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, s.Mode)
	}
	return nil
}

func (s *Settings) String() string {
	output := "\nSettings\n"
	output += fmt.Sprintf("Canvas: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Mode: %s\n", s.Mode)
	output += fmt.Sprintf("Gradient: %s -> %s\n", s.Top, s.Bottom)
	output += fmt.Sprintf("Seed: %d\n", s.Seed)
	if s.Output != "" {
		output += fmt.Sprintf("Output: %s (%d frames from t=%.3f)\n", s.Output, s.Frames, s.Time)
	}
	return output
}
