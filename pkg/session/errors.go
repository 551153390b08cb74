package session

import (
	"fmt"

	"github.com/backkem/jdwp/pkg/wire"
)

// TransportError wraps an underlying I/O failure on the duplex stream.
// Terminal for the session: seeing one in the reader or writer always
// transitions the session to CLOSED.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("session: transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError indicates a wire malformation: handshake mismatch, a
// length field out of range, invalid UTF-8, a truncated read, or an ID
// width used before negotiation. Terminal for the session when observed
// in the reader loop.
type ProtocolError struct {
	Msg string
	Err error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session: protocol error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("session: protocol error: %s", e.Msg)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// InvalidOperationError indicates a command was issued while the session
// could not accept it, e.g. after Close.
type InvalidOperationError struct {
	Msg string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("session: invalid operation: %s", e.Msg)
}

// InvalidArgumentError indicates a caller-supplied argument could not be
// satisfied, e.g. GetClassBySignature finding zero or multiple candidates.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("session: invalid argument: %s", e.Msg)
}

// CommandFailedError indicates the VM replied with a non-zero error code.
// The session remains READY; only the issuing caller is affected.
type CommandFailedError struct {
	Code uint16
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("session: %s", wire.CommandFailedMessage(e.Code))
}

// CancelledError indicates the caller's context was cancelled before its
// pending reply completed. The session remains healthy.
type CancelledError struct {
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("session: command cancelled: %v", e.Err)
}

func (e *CancelledError) Unwrap() error { return e.Err }
