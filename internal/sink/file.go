package sink

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Opener creates the destination behind a sink
type Opener func(path string) (io.WriteCloser, error)

// CreateFile truncates or creates path for writing
func CreateFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
}

// Sink is an append-only text output: header on open, one line per record,
// summary on close. Each record is written through immediately so the file
// is readable while a long run is still going.
type Sink struct {
	path    string
	w       io.WriteCloser
	created bool // destination made by CreateFile
	closed  bool
}

// Open opens path with open (CreateFile when nil) and writes the header
func Open(path string, open Opener) (*Sink, error) {
	created := open == nil
	if created {
		open = CreateFile
	}

	w, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	s := &Sink{path: path, w: w, created: created}
	if _, err := io.WriteString(w, Header()); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	return s, nil
}

// Path returns the destination path
func (s *Sink) Path() string {
	return s.path
}

// Write appends one record line
func (s *Sink) Write(line string) error {
	if s.closed {
		return fmt.Errorf("write to closed sink %s", s.path)
	}
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return fmt.Errorf("failed to write to %s: %w", s.path, err)
	}
	return nil
}

// Close writes the summary footer and closes the destination.
// The destination is closed even when the footer cannot be written.
// Calling Close again is a no-op.
func (s *Sink) Close(summary string) error {
	if s.closed {
		return nil
	}
	s.closed = true

	_, werr := io.WriteString(s.w, "\n"+summary)
	cerr := s.w.Close()

	if werr != nil {
		return fmt.Errorf("failed to write summary to %s: %w", s.path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, cerr)
	}
	return nil
}

// Discard closes the destination without a summary and removes the file
// when the sink created it. It is used when a run fails before it starts.
func (s *Sink) Discard() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.w.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, err)
	}
	if !s.created {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", s.path, err)
	}
	return nil
}
