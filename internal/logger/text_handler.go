package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// levelWidth pads level names so messages line up
const levelWidth = 5

// textHandler renders console lines as:
//
//	WARN  [diskutils] statfs failed path=/mnt/sd error="no such file or directory"
//
// Timestamps are omitted; journald or the terminal already provide them.
type textHandler struct {
	w      io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

func newTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return &textHandler{w: w, mu: &sync.Mutex{}, level: level}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler interface requires record by value
func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	name := levelName(r.Level)
	b.WriteString(name)
	if pad := levelWidth - len(name); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteByte(' ')

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}

	type pending struct {
		prefix string
		attr   slog.Attr
	}
	var module string
	var rest []pending
	collect := func(p string, a slog.Attr) {
		if a.Key == moduleKey && p == "" {
			module = a.Value.String()
			return
		}
		rest = append(rest, pending{p, a})
	}
	for _, a := range h.attrs {
		collect("", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collect(prefix, a)
		return true
	})

	if module != "" {
		b.WriteString("[")
		b.WriteString(module)
		b.WriteString("] ")
	}
	b.WriteString(r.Message)

	for _, p := range rest {
		writeAttr(&b, p.prefix, p.attr)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, prefix+a.Key+".", ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')

	var s string
	switch a.Value.Kind() {
	case slog.KindTime:
		s = a.Value.Time().Format(time.RFC3339)
	case slog.KindAny:
		s = fmt.Sprint(a.Value.Any())
	default:
		s = a.Value.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		s = strconv.Quote(s)
	}
	b.WriteString(s)
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	if len(h.groups) > 0 {
		attrs = []slog.Attr{slog.Any(strings.Join(h.groups, "."), slog.GroupValue(attrs...))}
	}
	h2.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &h2
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string(nil), h.groups...), name)
	return &h2
}
