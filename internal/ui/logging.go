package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// logMsg is a single rendered log line, typed for dispatch as a [tea.Msg]
// within a [tea.Program].
type logMsg string

// programSender is the message-sending side of a [tea.Program].
type programSender interface {
	Send(msg tea.Msg)
}

// logQueueMax bounds the number of log lines queued towards the program.
const logQueueMax = 500

// TeaLogWriter is an [io.Writer] bridging a [slog.Handler] into a running
// [tea.Program]. Lines pass through a bounded queue drained by a single
// forwarding goroutine, so a slow or torn-down program never stalls the
// logging caller.
type TeaLogWriter struct {
	sender   programSender
	doneChan chan struct{}
	logChan  chan logMsg
}

// NewTeaLogWriter returns a pointer to a new [TeaLogWriter] and starts its
// internal forwarding, to be stopped later with [TeaLogWriter.Stop].
func NewTeaLogWriter(sender programSender) *TeaLogWriter {
	wr := &TeaLogWriter{
		sender:   sender,
		doneChan: make(chan struct{}),
		logChan:  make(chan logMsg, logQueueMax),
	}

	go wr.forwardLogs()

	return wr
}

// Stop stops the log forwarding. Any queued or late lines are discarded
// after calling this method.
func (wr *TeaLogWriter) Stop() {
	close(wr.doneChan)
}

func (wr *TeaLogWriter) forwardLogs() {
	for {
		select {
		case <-wr.doneChan:
			return
		case msg := <-wr.logChan:
			wr.sender.Send(msg)
		}
	}
}

// Write queues one log line for forwarding into the program. It never
// blocks: a line arriving after [TeaLogWriter.Stop], or while the queue is
// full, is dropped and still reported as written.
func (wr *TeaLogWriter) Write(p []byte) (int, error) {
	select {
	case <-wr.doneChan:
	case wr.logChan <- logMsg(p):
	default:
	}

	return len(p), nil
}
