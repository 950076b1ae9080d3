// Package log is a small structured logging layer over [log/slog].
//
// A [Logger] is an immutable value: [Make] builds one from functional
// options and [Logger.Wrap] derives a reconfigured copy, so loggers can be
// shared between goroutines without locking. The zero Logger discards all
// records.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"))
//	logger.DebugContext(ctx, "script compiled", slog.Int("source_bytes", n))
//
// Every level has a context-aware method and one that uses
// [DefaultContextProvider]. Attributes are typed [slog.Attr] values.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used for per-call detail such
// as cache lookups and key presses.
//
// # Formats
//
// [FormatText] writes key=value records and, with [WithPretty], colors them
// using lipgloss. [FormatJSON] writes one JSON object per line.
//
// # Package Logger
//
// The package-level functions log through [Default], which the command line
// reconfigures with [Config] as flags are parsed.
package log
