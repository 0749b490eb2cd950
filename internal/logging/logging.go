package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the process logger. Verbose enables debug level, which also
// forwards the media engine's own output.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
