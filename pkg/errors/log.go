package errors

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogOptions configures the logger built by NewLogger.
type LogOptions struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// NewLogger builds a zerolog logger from opts. An empty level means info.
func NewLogger(opts LogOptions) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// LogHandler is an ErrorHandler that writes structured log records.
//
// Render-kind errors describe soft degradation (a surface without a drawing
// context) and are logged at debug level; everything else is logged as an
// error.
type LogHandler struct {
	// Logger receives the records. Nil logs to stderr.
	Logger *zerolog.Logger
	// Verbose enables stack traces in the output.
	Verbose bool
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &l
}

// HandleError logs a ControlError.
func (h *LogHandler) HandleError(err *ControlError) {
	if err == nil {
		return
	}
	ev := h.logger().Error()
	if err.Kind == KindRender {
		ev = h.logger().Debug()
	}
	ev = ev.Str("op", err.Op).Stringer("kind", err.Kind).AnErr("cause", err.Err)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("tweak error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("tweak panic")
}
