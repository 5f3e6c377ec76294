// Package mailbox provides the single-slot handoff between the transport
// receive path and the poll loop. One goroutine deposits a complete line,
// another consumes it; the pending flag is the only signal between the
// two. A mutex stands in for the interrupt masking the model assumes:
// deposit and consume are each atomic with respect to the other context.
package mailbox

import (
	"fmt"
	"sync"

	"shellkernel/pkg/shelltypes"
)

// ErrLineTooLong reports input exceeding the line buffer capacity. The
// line is rejected whole; nothing is truncated.
var ErrLineTooLong = fmt.Errorf("line exceeds %d bytes", shelltypes.MaxLineLen)

// Mailbox is a single-slot line buffer. The zero value is ready to use.
type Mailbox struct {
	mu      sync.Mutex
	pending bool
	buf     [shelltypes.MaxLineLen]byte
	n       int
}

// Put deposits a line and sets the pending flag. A line still pending
// from an earlier Put is overwritten; dropped reports that so the caller
// can surface the dropped-line semantics. Oversize input is rejected with
// ErrLineTooLong and leaves the slot untouched.
func (m *Mailbox) Put(p []byte) (dropped bool, err error) {
	if len(p) > shelltypes.MaxLineLen {
		return false, fmt.Errorf("%w (got %d)", ErrLineTooLong, len(p))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	dropped = m.pending
	m.n = copy(m.buf[:], p)
	m.pending = true
	return dropped, nil
}

// Take copies the pending line into dst and clears the pending flag.
// Returns the line length and whether a line was pending. dst must hold
// MaxLineLen bytes.
func (m *Mailbox) Take(dst []byte) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.pending {
		return 0, false
	}
	n := copy(dst, m.buf[:m.n])
	m.pending = false
	return n, true
}

// Pending reports whether an unconsumed line is waiting.
func (m *Mailbox) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}
