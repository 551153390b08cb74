package wire

import "errors"

// Wire-level errors. These surface as session.ProtocolError once wrapped
// by the caller; pkg/wire itself only deals in plain errors so it has no
// dependency on the session package.
var (
	// ErrShortRead is returned when a primitive read runs past the end of
	// the reader's buffer.
	ErrShortRead = errors.New("wire: invalid JDWP packet")

	// ErrInvalidUTF8 is returned when a decoded string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("wire: invalid UTF-8 in packet")

	// ErrIDSizesUnknown is returned by the checked accessors when a decode
	// is attempted before VM.ID_SIZES has completed.
	ErrIDSizesUnknown = errors.New("wire: ID sizes not yet negotiated")
)

// idSizeContractViolation panics; reaching it means an ID width outside
// {4, 8} made it past NewIDSizes, or an assert accessor was used while
// IDSizes is still unknown. Both are caller bugs, not protocol faults.
func idSizeContractViolation(msg string) {
	panic("wire: " + msg)
}
