package log

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals
var (
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	trueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	falseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	levelStyles = map[Level]lipgloss.Style{
		LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// prettyHandler writes colorized key=value records. Strings are unquoted.
type prettyHandler struct {
	cfg    config
	mu     *sync.Mutex
	attrs  []byte // attributes added by WithAttrs, already rendered
	prefix string // key prefix of the open groups
}

func newPrettyHandler(cfg config) *prettyHandler {
	return &prettyHandler{cfg: cfg, mu: &sync.Mutex{}}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.cfg.level)
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if ts := h.cfg.formatTime(r.Time); !r.Time.IsZero() && ts != "" {
		writeKey(&buf, slog.TimeKey)
		buf.WriteString(timeStyle.Render(ts))
	}

	writeKey(&buf, slog.LevelKey)
	buf.WriteString(levelStyle(r.Level).Render(levelName(r.Level)))

	if h.cfg.caller {
		if src := r.Source(); src != nil && src.File != "" {
			writeKey(&buf, slog.SourceKey)
			buf.WriteString(stringStyle.Render(src.File + ":" + strconv.Itoa(src.Line)))
		}
	}

	writeKey(&buf, slog.MessageKey)
	buf.WriteString(stringStyle.Render(r.Message))

	if len(h.attrs) > 0 {
		buf.WriteByte(' ')
		buf.Write(h.attrs)
	}

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.cfg.output.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(bytes.Clone(h.attrs))
	for _, a := range attrs {
		writeAttr(buf, h.prefix, a)
	}

	clone := *h
	clone.attrs = buf.Bytes()

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

func levelStyle(l slog.Level) lipgloss.Style {
	for _, level := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug} {
		if Level(l) >= level {
			return levelStyles[level]
		}
	}

	return levelStyles[LevelTrace]
}

func writeKey(buf *bytes.Buffer, key string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(keyStyle.Render(key))
	buf.WriteByte('=')
}

// writeAttr renders a, flattening groups into dotted keys.
func writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			writeAttr(buf, prefix, ga)
		}

		return
	}

	writeKey(buf, prefix+a.Key)
	buf.WriteString(renderValue(a.Value))
}

func renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64:
		return numberStyle.Render(strconv.FormatInt(v.Int64(), 10))
	case slog.KindUint64:
		return numberStyle.Render(strconv.FormatUint(v.Uint64(), 10))
	case slog.KindFloat64:
		return numberStyle.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case slog.KindBool:
		if v.Bool() {
			return trueStyle.Render("true")
		}

		return falseStyle.Render("false")
	case slog.KindDuration:
		return numberStyle.Render(v.Duration().String())
	case slog.KindTime:
		return timeStyle.Render(v.Time().Format(time.RFC3339))
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return falseStyle.Render(err.Error())
		}

		return stringStyle.Render(fmt.Sprint(v.Any()))
	default:
		return stringStyle.Render(v.String())
	}
}
