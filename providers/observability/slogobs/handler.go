package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"
)

const (
	timeLayout     = "2006-01-02 15:04:05"
	jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Handler is a slog.Handler that writes records in one of the supported
// formats. Attribute keys are printed in sorted order.
type Handler struct {
	format Format
	level  slog.Leveler
	output io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Format Format
	Level  slog.Leveler
	// Output defaults to os.Stderr.
	Output io.Writer
	// Colors enables ANSI colors. When false and Output is a terminal, colors
	// are turned on anyway for compact and pretty output.
	Colors bool
}

// NewHandler creates a Handler. A nil opts yields compact INFO output on stderr.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	h := &Handler{
		format: opts.Format,
		level:  opts.Level,
		output: opts.Output,
		colors: opts.Colors,
		mu:     &sync.Mutex{},
	}
	if h.output == nil {
		h.output = os.Stderr
	}
	if h.format == "" {
		h.format = FormatCompact
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	if !h.colors && h.format != FormatJSON {
		if f, ok := h.output.(*os.File); ok {
			h.colors = isTerminal(f)
		}
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := h.collect(r)

	var buf []byte
	var err error
	switch h.format {
	case FormatPretty:
		buf = h.appendPretty(nil, r, fields)
	case FormatJSON:
		buf, err = appendJSON(r, fields)
		if err != nil {
			return err
		}
	default:
		buf = h.appendCompact(nil, r, fields)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.output.Write(buf)
	return err
}

// WithAttrs returns a Handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &clone
}

// WithGroup returns a Handler that prefixes later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *Handler) appendCompact(buf []byte, r slog.Record, fields map[string]any) []byte {
	buf = append(buf, r.Time.Format(timeLayout)...)
	buf = append(buf, ' ')
	buf = h.appendLevel(buf, r.Level, "%5s")
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	if len(fields) > 0 {
		// encoding/json sorts map keys, so the line is stable.
		data, err := json.Marshal(fields)
		if err != nil {
			buf = append(buf, " [json-error]"...)
		} else {
			buf = append(buf, " → "...)
			buf = append(buf, data...)
		}
	}
	return append(buf, '\n')
}

func (h *Handler) appendPretty(buf []byte, r slog.Record, fields map[string]any) []byte {
	buf = append(buf, '[')
	buf = append(buf, r.Time.Format(timeLayout)...)
	buf = append(buf, "] "...)
	buf = h.appendLevel(buf, r.Level, "%-5s")
	buf = append(buf, " | "...)
	buf = append(buf, r.Message...)
	buf = append(buf, '\n')

	for _, key := range sortedKeys(fields) {
		buf = append(buf, "    • "...)
		buf = append(buf, key...)
		buf = append(buf, " = "...)
		buf = append(buf, fmt.Sprintf("%v", fields[key])...)
		buf = append(buf, '\n')
	}
	return buf
}

func appendJSON(r slog.Record, fields map[string]any) ([]byte, error) {
	data := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		data[k] = v
	}
	data["time"] = r.Time.Format(jsonTimeLayout)
	data["level"] = LevelString(r.Level)
	data["msg"] = r.Message

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func (h *Handler) appendLevel(buf []byte, level slog.Level, layout string) []byte {
	label := fmt.Sprintf(layout, LevelString(level))
	if !h.colors {
		return append(buf, label...)
	}
	buf = append(buf, colorForLevel(level)...)
	buf = append(buf, label...)
	return append(buf, colorReset...)
}

// collect flattens handler and record attributes into a single map keyed by
// their dotted group path.
func (h *Handler) collect(r slog.Record) map[string]any {
	fields := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		addAttr(fields, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(fields, h.prefix, a)
		return true
	})
	return fields
}

func addAttr(fields map[string]any, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		p := prefix
		if a.Key != "" {
			p = prefix + a.Key + "."
		}
		for _, ga := range group {
			addAttr(fields, p, ga)
		}
		return
	}
	fields[prefix+a.Key] = attrValue(a.Value)
}

func attrValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	}
	switch val := v.Any().(type) {
	case time.Duration:
		return val.String()
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		return val
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func colorForLevel(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return colorGray
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
