package wire

import "encoding/binary"

// headerSize is the fixed 11-byte JDWP packet header: length, id, flags,
// and either (command-set, command) or an error code.
const headerSize = 11

// replyFlag marks a packet as a reply rather than a command.
const replyFlag = 0x80

// CommandBuilder assembles an outgoing command packet into a growable
// buffer, matching the wire layout in full: a 4-byte length placeholder,
// the 4-byte id, a zero flags byte, then the command-set/command pair.
// Finalize back-patches the length once every field has been appended.
type CommandBuilder struct {
	buf []byte
}

// NewCommandBuilder starts a command packet for the given command-set,
// command, and previously assigned id, pre-writing the 11-byte header.
func NewCommandBuilder(id uint32, commandSet, command uint8) *CommandBuilder {
	b := &CommandBuilder{buf: make([]byte, headerSize, 32)}
	binary.BigEndian.PutUint32(b.buf[0:4], 0) // length, back-patched in Finalize
	binary.BigEndian.PutUint32(b.buf[4:8], id)
	b.buf[8] = 0 // flags: command
	b.buf[9] = commandSet
	b.buf[10] = command
	return b
}

// AppendU8 appends a single byte.
func (b *CommandBuilder) AppendU8(v uint8) *CommandBuilder {
	b.buf = append(b.buf, v)
	return b
}

// AppendBool appends a boolean as a single byte, 0 or 1.
func (b *CommandBuilder) AppendBool(v bool) *CommandBuilder {
	if v {
		return b.AppendU8(1)
	}
	return b.AppendU8(0)
}

// AppendI32 appends a signed 32-bit big-endian integer.
func (b *CommandBuilder) AppendI32(v int32) *CommandBuilder {
	return b.AppendU32(uint32(v))
}

// AppendU32 appends an unsigned 32-bit big-endian integer.
func (b *CommandBuilder) AppendU32(v uint32) *CommandBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

// AppendI64 appends a signed 64-bit big-endian integer.
func (b *CommandBuilder) AppendI64(v int64) *CommandBuilder {
	return b.AppendU64(uint64(v))
}

// AppendU64 appends an unsigned 64-bit big-endian integer.
func (b *CommandBuilder) AppendU64(v uint64) *CommandBuilder {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

// AppendUTF8String appends a u32 byte-length prefix followed by the raw
// UTF-8 bytes of s. No NUL terminator.
func (b *CommandBuilder) AppendUTF8String(s string) *CommandBuilder {
	b.AppendU32(uint32(len(s)))
	b.buf = append(b.buf, s...)
	return b
}

// appendIDWidth emits v at the given width: 4 truncates to 32 bits, 8
// emits the full 64-bit value. Any other width is a contract violation
// caught by IDSizes before reaching here.
func (b *CommandBuilder) appendIDWidth(v uint64, width int) *CommandBuilder {
	switch width {
	case 4:
		return b.AppendU32(uint32(v))
	case 8:
		return b.AppendU64(v)
	default:
		idSizeContractViolation("ID width must be 4 or 8 bytes")
		return b
	}
}

// AppendFieldID appends a FieldID at the negotiated field width.
func (b *CommandBuilder) AppendFieldID(sizes IDSizes, v uint64) *CommandBuilder {
	return b.appendIDWidth(v, sizes.MustFieldIDSize())
}

// AppendMethodID appends a MethodID at the negotiated method width.
func (b *CommandBuilder) AppendMethodID(sizes IDSizes, v uint64) *CommandBuilder {
	return b.appendIDWidth(v, sizes.MustMethodIDSize())
}

// AppendObjectID appends an ObjectID at the negotiated object width.
func (b *CommandBuilder) AppendObjectID(sizes IDSizes, v uint64) *CommandBuilder {
	return b.appendIDWidth(v, sizes.MustObjectIDSize())
}

// AppendReferenceTypeID appends a ReferenceTypeID at the negotiated width.
func (b *CommandBuilder) AppendReferenceTypeID(sizes IDSizes, v uint64) *CommandBuilder {
	return b.appendIDWidth(v, sizes.MustReferenceTypeIDSize())
}

// AppendFrameID appends a FrameID at the negotiated frame width.
func (b *CommandBuilder) AppendFrameID(sizes IDSizes, v uint64) *CommandBuilder {
	return b.appendIDWidth(v, sizes.MustFrameIDSize())
}

// Finalize back-patches the length prefix and returns the completed
// packet bytes. The builder must not be reused afterward.
func (b *CommandBuilder) Finalize() []byte {
	binary.BigEndian.PutUint32(b.buf[0:4], uint32(len(b.buf)))
	return b.buf
}

// Len reports the buffer length as it stands, header included.
func (b *CommandBuilder) Len() int {
	return len(b.buf)
}
