package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Handler implements slog.Handler for TTY-optimized text output.
// It provides colorized output when the writer supports it.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string

	// Colors
	timeColor  *color.Color
	debugColor *color.Color
	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	keyColor   *color.Color
}

// NewHandler creates a new TTY-optimized text handler.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}

	// Only initialize colors if the writer supports them
	if SupportsColor(out) {
		h.timeColor = color.New(color.FgHiBlack)
		h.debugColor = color.New(color.FgMagenta)
		h.infoColor = color.New(color.FgGreen)
		h.warnColor = color.New(color.FgYellow)
		h.errorColor = color.New(color.FgRed, color.Bold)
		h.keyColor = color.New(color.FgCyan)
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle handles the Record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !r.Time.IsZero() {
		fmt.Fprintf(h.out, "%s ", h.paint(h.timeColor, r.Time.Format(time.Kitchen)))
	}
	fmt.Fprintf(h.out, "%-5s %s", h.paint(h.levelColor(r.Level), levelName(r.Level)), r.Message)

	for _, a := range h.attrs {
		h.appendAttr(a, "")
	}
	prefix := h.groupPrefix()
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(a, prefix)
		return true
	})

	fmt.Fprintln(h.out)

	return nil
}

func (h *Handler) levelColor(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return h.errorColor
	case l >= slog.LevelWarn:
		return h.warnColor
	case l >= slog.LevelInfo:
		return h.infoColor
	default:
		return h.debugColor
	}
}

// paint is a no-op when colors are disabled for the writer.
func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// levelName renders LevelTrace as TRACE rather than DEBUG-4.
func levelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func (h *Handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func (h *Handler) appendAttr(a slog.Attr, prefix string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(ga, prefix)
		}
		return
	}

	key := h.paint(h.keyColor, prefix+a.Key)

	value := a.Value.Any()
	if err, ok := value.(error); ok {
		value = err.Error()
	}
	if s, ok := value.(string); ok && strings.ContainsAny(s, " \t\n\"") {
		value = strconv.Quote(s)
	}

	fmt.Fprintf(h.out, " %s=%v", key, value)
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newH.attrs, h.attrs)
	newH.attrs = qualify(newH.attrs, h.groupPrefix(), attrs)
	return &newH
}

// qualify appends attrs to dst with keys prefixed by the current group
// path, so groups opened later do not apply to them. Inline groups are
// flattened.
func qualify(dst []slog.Attr, prefix string, attrs []slog.Attr) []slog.Attr {
	for _, a := range attrs {
		if a.Key == "" && a.Value.Kind() == slog.KindGroup {
			dst = qualify(dst, prefix, a.Value.Group())
			continue
		}
		a.Key = prefix + a.Key
		dst = append(dst, a)
	}
	return dst
}

// WithGroup returns a new Handler with the given group name.
// Groups are rendered by prefixing attribute keys with the group path.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.groups = make([]string, len(h.groups)+1)
	copy(newH.groups, h.groups)
	newH.groups[len(h.groups)] = name
	return &newH
}
