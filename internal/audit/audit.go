// Package audit appends timestamped action lines to the ledger's audit resource.
// Entries are write-only; nothing in the ledger reads them back.
package audit

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hance08/teller/internal/constants"
)

// Sink stores one audit entry.
type Sink interface {
	WriteEntry(at time.Time, action string) error
}

// Trail stamps actions with the current time and hands them to a Sink.
type Trail struct {
	sink Sink
	now  func() time.Time
}

func NewTrail(sink Sink) *Trail {
	return &Trail{sink: sink, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (t *Trail) WithClock(now func() time.Time) *Trail {
	t.now = now
	return t
}

// Record appends action. The error is returned so the caller can decide to ignore it.
func (t *Trail) Record(action string) error {
	return t.sink.WriteEntry(t.now(), action)
}

// FileSink appends "[<timestamp>] <action>" lines to a log file.
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) WriteEntry(at time.Time, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}

	if _, err := fmt.Fprintf(f, "[%s] %s\n", at.Format(constants.AuditTimeFormat), action); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return f.Close()
}
