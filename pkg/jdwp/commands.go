package jdwp

// Command-set and command constants for the subset of JDWP the session
// core issues. Values match the JDWP wire specification exactly.
const (
	CommandSetVM                uint8 = 1
	CommandVMClassesBySignature uint8 = 2
	CommandVMIDSizes            uint8 = 7

	CommandSetReferenceType     uint8 = 2
	CommandReferenceTypeMethods uint8 = 5

	CommandSetEventRequest                 uint8 = 15
	CommandEventRequestSet                 uint8 = 1
	CommandEventRequestClear               uint8 = 2
	CommandEventRequestClearAllBreakpoints uint8 = 3
)

// MaxPacketSize is the largest length a packet header may declare.
const MaxPacketSize = 10 * 1024 * 1024

// HandshakeBytes is the fixed 14-byte ASCII handshake exchanged in both
// directions before any packet is framed.
const HandshakeBytes = "JDWP-Handshake"
