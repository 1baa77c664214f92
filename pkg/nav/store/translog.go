package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TransitionsFilename is the JSONL transition log name under the workspace.
const TransitionsFilename = "transitions.jsonl"

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// JSONLTransitionLog
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// JSONLTransitionLog implements TransitionLog as a JSONL file, one record per
// line.
type JSONLTransitionLog struct {
	path string
	seq  int64
	mu   sync.Mutex
}

// NewJSONLTransitionLog creates a transition log under workspaceRoot.
func NewJSONLTransitionLog(workspaceRoot string) (*JSONLTransitionLog, error) {
	if err := os.MkdirAll(workspaceRoot, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace directory: %w", err)
	}
	return &JSONLTransitionLog{path: filepath.Join(workspaceRoot, TransitionsFilename)}, nil
}

// Append adds a record to the log, assigning sequence and timestamp when the
// caller left them unset.
func (l *JSONLTransitionLog) Append(ctx context.Context, rec TransitionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec.Seq == 0 {
		l.seq++
		rec.Seq = l.seq
	} else if rec.Seq > l.seq {
		l.seq = rec.Seq
	}
	if rec.Ts.IsZero() {
		rec.Ts = time.Now()
	}
	if rec.Version == 0 {
		rec.Version = 1
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal transition: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open transition log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append transition: %w", err)
	}
	return nil
}

// Stream returns a stream over the logged records.
func (l *JSONLTransitionLog) Stream(ctx context.Context) (TransitionStream, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return &emptyTransitionStream{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open transition log: %w", err)
	}
	return &fileTransitionStream{file: f, scanner: bufio.NewScanner(f)}, nil
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Stream Implementations
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// fileTransitionStream reads records from a JSONL file.
type fileTransitionStream struct {
	file    *os.File
	scanner *bufio.Scanner
}

func (s *fileTransitionStream) Recv(ctx context.Context) (TransitionRecord, error) {
	select {
	case <-ctx.Done():
		return TransitionRecord{}, ctx.Err()
	default:
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return TransitionRecord{}, fmt.Errorf("failed to scan transition: %w", err)
		}
		return TransitionRecord{}, io.EOF
	}

	var rec TransitionRecord
	if err := json.Unmarshal(s.scanner.Bytes(), &rec); err != nil {
		return TransitionRecord{}, fmt.Errorf("failed to unmarshal transition: %w", err)
	}
	return rec, nil
}

func (s *fileTransitionStream) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// emptyTransitionStream returns EOF immediately.
type emptyTransitionStream struct{}

func (s *emptyTransitionStream) Recv(ctx context.Context) (TransitionRecord, error) {
	return TransitionRecord{}, io.EOF
}

func (s *emptyTransitionStream) Close() error {
	return nil
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Channel Transition Stream (for live views)
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// ChannelTransitionStream implements TransitionStream over a channel. The
// demo UI uses it to feed live transitions into its render loop.
type ChannelTransitionStream struct {
	ch     chan TransitionRecord
	closed bool
	mu     sync.Mutex
}

// NewChannelTransitionStream creates a new channel-based stream.
func NewChannelTransitionStream(bufferSize int) *ChannelTransitionStream {
	return &ChannelTransitionStream{ch: make(chan TransitionRecord, bufferSize)}
}

// Send feeds a record into the stream.
func (s *ChannelTransitionStream) Send(rec TransitionRecord) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrLogClosed
	}
	s.mu.Unlock()

	s.ch <- rec
	return nil
}

// Recv receives the next record from the stream.
func (s *ChannelTransitionStream) Recv(ctx context.Context) (TransitionRecord, error) {
	select {
	case <-ctx.Done():
		return TransitionRecord{}, ctx.Err()
	case rec, ok := <-s.ch:
		if !ok {
			return TransitionRecord{}, io.EOF
		}
		return rec, nil
	}
}

// Close closes the stream.
func (s *ChannelTransitionStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	return nil
}
