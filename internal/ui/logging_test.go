package ui_test

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jailfs/internal/ui"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.msgs = append(s.msgs, msg)
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.msgs)
}

func TestTeaLogWriter_ForwardsLines(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	wr := ui.NewTeaLogWriter(sender)
	defer wr.Stop()

	n, err := wr.Write([]byte("jail established\n"))

	require.NoError(t, err)
	assert.Equal(t, len("jail established\n"), n)

	assert.Eventually(t, func() bool {
		return sender.count() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestTeaLogWriter_NeverBlocksAfterStop(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	wr := ui.NewTeaLogWriter(sender)
	wr.Stop()

	n, err := wr.Write([]byte("late line\n"))

	require.NoError(t, err)
	assert.Equal(t, len("late line\n"), n)

	assert.Never(t, func() bool {
		return sender.count() > 0
	}, 100*time.Millisecond, 10*time.Millisecond)
}
