package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Handler is a slog.Handler printing one compact JSON object per line.
// Geared toward CLI logs; not optimized for throughput.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler
	attrs []slog.Attr
}

func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{w: w, mu: &sync.Mutex{}, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	payload := make(map[string]any, 4+r.NumAttrs()+len(h.attrs))

	when := r.Time
	if when.IsZero() {
		when = time.Now()
	}
	payload["time"] = when.Format(time.RFC3339)
	payload["level"] = r.Level.String()
	payload["msg"] = r.Message

	for _, a := range h.attrs {
		payload[a.Key] = a.Value.Resolve().Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		payload[a.Key] = a.Value.Resolve().Any()
		return true
	})

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(append(b, '\n'))
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

// WithGroup is accepted but flattens: group names are dropped. The
// game only logs flat attrs.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

// Setup installs the handler as the process-wide default logger.
func Setup(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(w, level)))
}
