package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/packsync/internal/ui/output"
	"go.trai.ch/packsync/internal/ui/style"
)

// levelStyle is the icon and colour a record level is printed with.
type levelStyle struct {
	icon  string
	color string
}

var levelStyles = map[slog.Level]levelStyle{
	slog.LevelWarn:  {icon: style.Warning, color: string(style.Yellow)},
	slog.LevelError: {icon: style.Cross, color: string(style.Red)},
}

var defaultLevelStyle = levelStyle{color: string(style.Slate)}

// PrettyHandler is a slog.Handler that prints one coloured line per record,
// followed by key=value attributes. Handlers derived through WithAttrs and
// WithGroup share the writer lock, so concurrent install windows never
// interleave partial lines.
type PrettyHandler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		mu:    &sync.Mutex{},
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls, ok := levelStyles[r.Level]
	if !ok {
		ls = defaultLevelStyle
	}

	var b strings.Builder
	if ls.icon != "" {
		b.WriteString(ls.icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	parts := h.attrs
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})
	for _, part := range parts {
		b.WriteByte(' ')
		b.WriteString(part)
	}

	line := output.Colorize(h.out, b.String(), ls.color) + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(line)
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
// The attributes keep the group prefix active at the time of the call.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, attr)
	}
	return next
}

// WithGroup returns a new Handler whose later attributes are nested under name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		mu:     h.mu,
		level:  h.level,
		prefix: h.prefix,
		attrs:  append([]string(nil), h.attrs...),
	}
}

// appendAttr renders attr as key=value, flattening group values into
// dotted keys. Values containing spaces are quoted.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	if attr.Value.Kind() == slog.KindGroup {
		nested := prefix
		if attr.Key != "" {
			nested += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, nested, member)
		}
		return parts
	}

	value := attr.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"") {
		value = strconv.Quote(value)
	}
	return append(parts, prefix+attr.Key+"="+value)
}
