package session

import (
	"encoding/binary"
	"io"

	"github.com/backkem/jdwp/pkg/jdwp"
	"github.com/backkem/jdwp/pkg/wire"
)

const headerSize = 11

// readLoop repeats until it sees an error: read one full packet, then
// dispatch it by id to the matching pending reply, or drop it silently if
// no caller is waiting on that id. Any error here is terminal for the
// session.
func (s *Session) readLoop() {
	defer s.readerWg.Done()

	for {
		buf, err := s.readPacket()
		if err != nil {
			s.teardown(err)
			return
		}
		s.dispatch(buf)
	}
}

func (s *Session) readPacket() ([]byte, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(s.conn, header); err != nil {
		return nil, &TransportError{Op: "read header", Err: err}
	}

	length := binary.BigEndian.Uint32(header[0:4])
	if length < headerSize {
		return nil, &ProtocolError{Msg: "packet length too small"}
	}
	if length > jdwp.MaxPacketSize {
		return nil, &ProtocolError{Msg: "packet length too large"}
	}
	if length == headerSize {
		return header, nil
	}

	payload := make([]byte, length-headerSize)
	if _, err := io.ReadFull(s.conn, payload); err != nil {
		return nil, &TransportError{Op: "read payload", Err: err}
	}
	return append(header, payload...), nil
}

// dispatch matches a fully-read packet to its pending reply by id. Unknown
// ids are dropped: there is no caller left waiting for them.
func (s *Session) dispatch(buf []byte) {
	r := wire.NewPacketReader(buf)
	id, err := r.PacketID()
	if err != nil {
		s.log.Warn("dropping packet: could not read id")
		return
	}
	code, err := r.PacketErrorCode()
	if err != nil {
		s.log.Warn("dropping packet: could not read error code")
		return
	}

	s.mu.Lock()
	entry, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	s.mu.Unlock()

	if !ok {
		s.log.Warnf("dropping reply for unknown id %d", id)
		return
	}

	if code == 0 {
		r.Seek(headerSize)
		entry.complete(pendingResult{reader: r})
		return
	}
	entry.complete(pendingResult{err: &CommandFailedError{Code: code}})
}

// teardown runs exactly once per session: it transitions to CLOSED, fails
// every pending reply with err, fires stop observers (in a snapshot taken
// before any of them run, so observers added during teardown are skipped
// for this teardown), and ensures the underlying stream is closed.
func (s *Session) teardown(err error) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	pending := s.pending
	s.pending = make(map[uint32]*pendingReply)
	s.mu.Unlock()

	if err != nil {
		s.log.Errorf("session closed: %v", err)
	}

	for _, entry := range pending {
		entry.complete(pendingResult{err: err})
	}

	s.obsMu.Lock()
	observers := s.observers
	s.obsMu.Unlock()
	for _, fn := range observers {
		fn(err)
	}

	s.closeOnce.Do(func() {
		close(s.closeCh)
		yieldOnce()
		s.conn.Close()
	})
}
