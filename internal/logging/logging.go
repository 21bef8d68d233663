// ABOUTME: zerolog logger construction for the hobbies CLI and MCP server
// ABOUTME: Human-readable console output by default, JSON lines when requested

package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Options controls logger output.
type Options struct {
	// Verbose enables debug-level events.
	Verbose bool
	// JSON writes structured lines instead of console-formatted text.
	JSON bool
	// Out defaults to os.Stderr so stdout stays free for command output and
	// the MCP stdio transport.
	Out io.Writer
}

// New returns a logger tagged with the application name.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().
		Str("app", "hobbies").
		Timestamp().
		Logger()
}
