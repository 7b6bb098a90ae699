package zerolog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Config describes how log lines are rendered.
type Config struct {
	Level      string
	TimeLayout string
	Colored    bool
	JSON       bool
}

// New builds a zerolog backed logger writing to out. Console output uses
// fixed-width, optionally coloured columns; JSON output is left untouched.
func New(out io.Writer, cfg Config) (*Adapter, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var l zerolog.Logger
	if cfg.JSON {
		l = zerolog.New(out)
	} else {
		l = zerolog.New(consoleWriter(out, cfg))
	}

	l = l.Level(level).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return NewAdapter(&l), nil
}

func consoleWriter(out io.Writer, cfg Config) zerolog.ConsoleWriter {
	paint := func(f func(string, ...interface{}) string, format string, args ...interface{}) string {
		if !cfg.Colored {
			return fmt.Sprintf(format, args...)
		}
		return f(format, args...)
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !cfg.Colored,
		TimeFormat: cfg.TimeLayout,
		FormatLevel: func(i interface{}) string {
			return formatLevel(i, paint)
		},
		FormatMessage: func(i interface{}) string {
			msg, _ := i.(string)
			if msg == "" {
				return ">"
			}
			return "> " + msg
		},
		FormatCaller: func(i interface{}) string {
			return paint(term.Yellowf, "[%s]", formatCaller(i))
		},
		FormatTimestamp: func(i interface{}) string {
			return paint(term.Cyanf, "[%s]", formatTimestamp(i, cfg.TimeLayout))
		},
	}
}

type painter func(func(string, ...interface{}) string, string, ...interface{}) string

func formatLevel(i interface{}, paint painter) string {
	level, _ := i.(string)

	switch level {
	case zerolog.LevelTraceValue:
		return paint(term.Cyanf, "[TRC]")
	case zerolog.LevelDebugValue:
		return paint(term.Cyanf, "[DBG]")
	case zerolog.LevelInfoValue:
		return paint(term.Greenf, "[INF]")
	case zerolog.LevelWarnValue:
		return paint(term.Yellowf, "[WAR]")
	case zerolog.LevelErrorValue:
		return paint(term.Redf, "[ERR]")
	case zerolog.LevelFatalValue:
		return paint(term.Redf, "[FTL]")
	case zerolog.LevelPanicValue:
		return paint(term.Redf, "[PAN]")
	default:
		return paint(term.Whitef, "[UNK]")
	}
}

// formatCaller shortens "path/to/file.go:123" to a fixed width column.
func formatCaller(i interface{}) string {
	const (
		fileWidth = 14
		lineWidth = 4
	)

	name, _ := i.(string)
	if name == "" {
		return strings.Repeat(" ", fileWidth+lineWidth+1)
	}

	file, line, found := strings.Cut(filepath.Base(name), ":")
	if !found {
		return file
	}

	if len(file) > fileWidth {
		file = file[:fileWidth]
	}
	if len(line) > lineWidth {
		line = line[len(line)-lineWidth:]
	}

	return fmt.Sprintf("%-*s:%*s", fileWidth, file, lineWidth, line)
}

func formatTimestamp(i interface{}, layout string) string {
	raw, ok := i.(string)
	if !ok {
		return fmt.Sprint(i)
	}

	ts, err := time.Parse(zerolog.TimeFieldFormat, raw)
	if err != nil {
		return raw
	}

	return ts.In(time.Local).Format(layout)
}
