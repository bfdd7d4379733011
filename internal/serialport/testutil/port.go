// Package testutil provides fake serial ports for exercising the sender
// and receiver state machines without hardware.
package testutil

import (
	"sync"
	"time"
)

// FakePort is an in-memory Port implementation. Reads are served from a
// queue of chunks, one chunk per Read call; an empty queue behaves like a
// read timeout (0 bytes, nil error), matching the short-timeout semantics
// of the real link.
type FakePort struct {
	mu          sync.Mutex
	readQueue   [][]byte
	writes      [][]byte
	readErr     error
	writeErr    error
	closed      bool
	readTimeout time.Duration
}

// QueueRead appends a chunk to be returned by a future Read call.
func (p *FakePort) QueueRead(chunk []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readQueue = append(p.readQueue, chunk)
}

// FailReads makes every subsequent Read return err.
func (p *FakePort) FailReads(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readErr = err
}

// FailWrites makes every subsequent Write return err.
func (p *FakePort) FailWrites(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writeErr = err
}

// Writes returns a copy of everything written to the port so far.
func (p *FakePort) Writes() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]byte, len(p.writes))
	copy(out, p.writes)
	return out
}

// WrittenLines returns all written bytes joined and split into strings by
// newline, dropping the trailing empty segment.
func (p *FakePort) WrittenLines() []string {
	var joined []byte
	for _, w := range p.Writes() {
		joined = append(joined, w...)
	}
	var lines []string
	start := 0
	for i, b := range joined {
		if b == '\n' {
			lines = append(lines, string(joined[start:i]))
			start = i + 1
		}
	}
	return lines
}

// Closed reports whether Close has been called.
func (p *FakePort) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *FakePort) Read(buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.readErr != nil {
		return 0, p.readErr
	}
	if len(p.readQueue) == 0 {
		return 0, nil // timeout, no data
	}
	chunk := p.readQueue[0]
	p.readQueue = p.readQueue[1:]
	n := copy(buf, chunk)
	return n, nil
}

func (p *FakePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	written := make([]byte, len(b))
	copy(written, b)
	p.writes = append(p.writes, written)
	return len(b), nil
}

func (p *FakePort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *FakePort) SetReadTimeout(t time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readTimeout = t
	return nil
}

func (p *FakePort) ResetInputBuffer() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readQueue = nil
	return nil
}
