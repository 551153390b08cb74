package session

import (
	"bytes"
	"context"
	"io"

	"github.com/backkem/jdwp/pkg/jdwp"
)

// handshake writes the 14-byte ASCII handshake and reads exactly 14 bytes
// back, failing with a protocol error if they differ byte-for-byte. ctx
// only bounds how long the caller is willing to wait; the read/write
// themselves are not individually cancellable mid-flight (the underlying
// io.ReadWriteCloser gives us no portable way to do that), so on ctx
// expiry we close the connection to unblock them.
func (s *Session) handshake(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		if _, err := s.conn.Write([]byte(jdwp.HandshakeBytes)); err != nil {
			done <- &TransportError{Op: "handshake write", Err: err}
			return
		}
		reply := make([]byte, len(jdwp.HandshakeBytes))
		if _, err := io.ReadFull(s.conn, reply); err != nil {
			done <- &TransportError{Op: "handshake read", Err: err}
			return
		}
		if !bytes.Equal(reply, []byte(jdwp.HandshakeBytes)) {
			done <- &ProtocolError{Msg: "Unexpected handshake reply"}
			return
		}
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		s.conn.Close()
		<-done
		return &TransportError{Op: "handshake", Err: ctx.Err()}
	}
}
