package main

import (
	"context"
	"log/slog"
	"sync"
)

// SlogManager is a [slog.Handler] fanning every record out to a set of
// named handlers that can be added and removed at runtime. It stays
// installed as the process default for the whole session, so rerouting the
// logs into the shell UI (and back out of it) never swaps the default
// logger itself.
type SlogManager struct {
	mu       sync.RWMutex
	handlers map[string]slog.Handler
	attrs    []slog.Attr
	groups   []string
}

// NewSlogManager returns a pointer to a new, empty [SlogManager].
func NewSlogManager() *SlogManager {
	return &SlogManager{
		handlers: make(map[string]slog.Handler),
	}
}

// Enabled reports whether any of the attached handlers accepts the level.
func (m *SlogManager) Enabled(ctx context.Context, level slog.Level) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle passes the record to every attached handler, ignoring individual
// delivery failures.
func (m *SlogManager) Handle(ctx context.Context, r slog.Record) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.handlers {
		_ = h.Handle(ctx, r)
	}

	return nil
}

// WithAttrs returns a clone of the manager whose handlers carry the
// additional attributes.
//
//nolint:ireturn
func (m *SlogManager) WithAttrs(attrs []slog.Attr) slog.Handler {
	m.mu.Lock()
	defer m.mu.Unlock()

	groups := make([]string, len(m.groups))
	copy(groups, m.groups)

	clone := &SlogManager{
		handlers: make(map[string]slog.Handler, len(m.handlers)),
		attrs:    append(m.attrs, attrs...),
		groups:   groups,
	}

	for name, h := range m.handlers {
		clone.handlers[name] = h.WithAttrs(attrs)
	}

	return clone
}

// WithGroup returns a clone of the manager whose handlers nest subsequent
// attributes under the group.
//
//nolint:ireturn
func (m *SlogManager) WithGroup(name string) slog.Handler {
	m.mu.Lock()
	defer m.mu.Unlock()

	attrs := make([]slog.Attr, len(m.attrs))
	copy(attrs, m.attrs)

	clone := &SlogManager{
		handlers: make(map[string]slog.Handler, len(m.handlers)),
		attrs:    attrs,
		groups:   append(m.groups, name),
	}

	for handlerName, h := range m.handlers {
		clone.handlers[handlerName] = h.WithGroup(name)
	}

	return clone
}

// AddHandler attaches a named handler, replaying any attributes and groups
// the manager accumulated so far onto it. An existing handler of the same
// name is replaced.
func (m *SlogManager) AddHandler(name string, handler slog.Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := handler
	for _, attr := range m.attrs {
		h = h.WithAttrs([]slog.Attr{attr})
	}

	for _, group := range m.groups {
		h = h.WithGroup(group)
	}

	m.handlers[name] = h
}

// RemoveHandler detaches the named handler; records no longer reach it.
func (m *SlogManager) RemoveHandler(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.handlers, name)
}
