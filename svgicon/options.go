package svgicon

import "log/slog"

// ErrorMode is the for setting how unsupported SVG elements are handled
type ErrorMode uint8

const (
	// WarnErrorMode skips unsupported elements and logs a warning.
	WarnErrorMode ErrorMode = iota
	// IgnoreErrorMode skips unsupported elements silently.
	IgnoreErrorMode
	// StrictErrorMode aborts the conversion on the first unsupported element.
	StrictErrorMode
)

const (
	// DefaultTolerance is the simplification tolerance,
	// in normalized coordinates.
	DefaultTolerance = 0.01
	// DefaultLineWidthRatio is the stroke width used when a stroke
	// has no explicit width, relative to sqrt(width * height) of the viewBox.
	DefaultLineWidthRatio = 0.005
)

// Fallback holds the raw paint values used when an element
// specifies nothing, neither as attribute nor in its style.
type Fallback struct {
	Fill        string `toml:"fill"`
	Stroke      string `toml:"stroke"`
	StrokeWidth string `toml:"stroke_width"`
}

// Options tunes the conversion. The zero value is valid, and
// equivalent to DefaultOptions().
type Options struct {
	// Tolerance is the maximum deviation allowed when simplifying,
	// in normalized coordinates. Zero means DefaultTolerance.
	Tolerance float64
	// RadialPrepass removes points closer than Tolerance to their
	// predecessor before the Douglas-Peucker pass. It is faster on dense
	// buffers, at the cost of a lower quality.
	RadialPrepass bool
	// MinStep is a lower bound for the sampling step, in user units.
	// It bounds the cost of sampling very long paths.
	MinStep float64

	ErrorMode ErrorMode
	Fallback  Fallback

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, ErrorMode: WarnErrorMode}
}

func (opts Options) tolerance() float64 {
	if opts.Tolerance <= 0 {
		return DefaultTolerance
	}
	return opts.Tolerance
}

func (opts Options) logger() *slog.Logger {
	if opts.Logger == nil {
		return slog.Default()
	}
	return opts.Logger
}

// warn logs a recoverable problem, unless warnings are disabled
func (opts Options) warn(msg string, args ...any) {
	if opts.ErrorMode == IgnoreErrorMode {
		return
	}
	opts.logger().Warn(msg, args...)
}
