package session

import (
	"context"

	"github.com/backkem/jdwp/pkg/wire"
)

// execute builds a command with set/command and an optional payload
// encoder, submits it, and suspends until the matching reply arrives, the
// caller's context is cancelled, or the session closes. On success the
// returned PacketReader is positioned just past the header, ready for the
// reply payload to be decoded.
func (s *Session) execute(ctx context.Context, commandSet, command uint8, encode func(*wire.CommandBuilder)) (*wire.PacketReader, error) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil, &InvalidOperationError{Msg: "connection is closed"}
	}
	id := s.nextID
	s.nextID++
	entry := newPendingReply()
	s.pending[id] = entry
	s.mu.Unlock()

	b := wire.NewCommandBuilder(id, commandSet, command)
	if encode != nil {
		encode(b)
	}
	buf := b.Finalize()

	s.enqueue(buf)

	select {
	case res := <-entry.done:
		if res.err != nil {
			return nil, res.err
		}
		return res.reader, nil
	case <-ctx.Done():
		return nil, &CancelledError{Err: ctx.Err()}
	}
}

// enqueue appends buf to the outbound queue and starts a drain goroutine
// if the queue was empty, so at most one drain runs at a time.
func (s *Session) enqueue(buf []byte) {
	s.mu.Lock()
	s.queue = append(s.queue, buf)
	kick := !s.draining
	if kick {
		s.draining = true
	}
	s.mu.Unlock()

	if kick {
		go s.drainWriter()
	}
}
