package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogManager_FansOutToAllHandlers(t *testing.T) {
	t.Parallel()

	var bufA, bufB bytes.Buffer

	manager := NewSlogManager()
	manager.AddHandler("a", slog.NewTextHandler(&bufA, nil))
	manager.AddHandler("b", slog.NewTextHandler(&bufB, nil))

	slog.New(manager).Info("shell session started")

	assert.Contains(t, bufA.String(), "shell session started")
	assert.Contains(t, bufB.String(), "shell session started")
}

func TestSlogManager_RemovedHandlerStopsReceiving(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	manager := NewSlogManager()
	manager.AddHandler(terminalLogHandler, slog.NewTextHandler(&buf, nil))

	logger := slog.New(manager)

	logger.Info("before detach")
	manager.RemoveHandler(terminalLogHandler)
	logger.Info("after detach")

	assert.Contains(t, buf.String(), "before detach")
	assert.NotContains(t, buf.String(), "after detach")
}

func TestSlogManager_SwapKeepsDefaultHandlerIntact(t *testing.T) {
	t.Parallel()

	var terminal, ui bytes.Buffer

	manager := NewSlogManager()
	manager.AddHandler(terminalLogHandler, slog.NewTextHandler(&terminal, nil))

	logger := slog.New(manager)

	// The UI attaches before the terminal detaches, mirroring startUI.
	manager.AddHandler(uiLogHandler, slog.NewTextHandler(&ui, nil))
	manager.RemoveHandler(terminalLogHandler)

	logger.Info("routed into the program")

	assert.NotContains(t, terminal.String(), "routed into the program")
	assert.Contains(t, ui.String(), "routed into the program")

	manager.AddHandler(terminalLogHandler, slog.NewTextHandler(&terminal, nil))
	manager.RemoveHandler(uiLogHandler)

	logger.Info("back on the terminal")

	assert.Contains(t, terminal.String(), "back on the terminal")
	assert.NotContains(t, ui.String(), "back on the terminal")
}

func TestSlogManager_LateHandlerInheritsAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	manager := NewSlogManager()

	attributed, ok := manager.WithAttrs([]slog.Attr{slog.String("root", "/srv")}).(*SlogManager)
	require.True(t, ok)

	attributed.AddHandler("a", slog.NewTextHandler(&buf, nil))

	logger := slog.New(attributed)
	logger.Info("confined")

	assert.Contains(t, buf.String(), "root=/srv")
}

func TestSlogManager_EnabledWithoutHandlers(t *testing.T) {
	t.Parallel()

	manager := NewSlogManager()

	assert.False(t, manager.Enabled(context.Background(), slog.LevelError))
}
