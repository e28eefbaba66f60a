package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// EntryKey is the attribute the engine uses for the entry name. The text
// handler prints it as a prefix instead of as key=value.
const EntryKey = "entry"

// Handler writes one line per record for a terminal:
//
//	WARN  zsh: target is a regular file  target=/home/me/.zshrc
//
// Colors are used only when the writer is a terminal that allows them.
type Handler struct {
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	entry  string
	attrs  []slog.Attr
	groups []string
	color  bool
}

// NewHandler creates a text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &Handler{
		level: level,
		out:   out,
		mu:    &sync.Mutex{},
		color: colorEnabled(out),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats r on a single line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(h.paint(levelColor(r.Level), fmt.Sprintf("%-5s", levelName(r.Level))))
	b.WriteByte(' ')

	entry := h.entry
	var attrs []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == EntryKey && len(h.groups) == 0 {
			entry = a.Value.String()
			return true
		}
		attrs = append(attrs, a)
		return true
	})

	if entry != "" {
		b.WriteString(h.paint(color.New(color.Bold), entry))
		b.WriteString(": ")
	}
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&b, nil, a)
	}
	for _, a := range attrs {
		h.writeAttr(&b, h.groups, a)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) writeAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, sub := range a.Value.Group() {
			h.writeAttr(b, append(groups[:len(groups):len(groups)], a.Key), sub)
		}
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	value := a.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\"=") {
		value = strconv.Quote(value)
	}

	fmt.Fprintf(b, " %s=%s", h.paint(color.New(color.FgCyan), key), value)
}

func (h *Handler) paint(c *color.Color, s string) string {
	if !h.color {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

// WithAttrs returns a handler that adds attrs to every record. An entry
// attribute becomes the line prefix.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		if a.Key == EntryKey && len(h.groups) == 0 {
			next.entry = a.Value.String()
			continue
		}
		if len(h.groups) > 0 {
			a = slog.Attr{Key: strings.Join(h.groups, ".") + "." + a.Key, Value: a.Value}
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup returns a handler that prefixes later keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &next
}

func levelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func levelColor(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return color.New(color.FgRed, color.Bold)
	case l >= slog.LevelWarn:
		return color.New(color.FgYellow)
	case l >= slog.LevelInfo:
		return color.New(color.FgGreen)
	case l > LevelTrace:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgHiBlack)
	}
}

// colorEnabled reports whether w is a terminal and neither NO_COLOR nor
// TERM=dumb is set.
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
