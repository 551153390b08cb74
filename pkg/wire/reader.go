package wire

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// PacketReader is a bounds-checked cursor decoder over a received packet
// buffer, header included. Every primitive read either advances the
// cursor by exactly the primitive's width or fails without advancing.
type PacketReader struct {
	buf    []byte
	cursor int
}

// NewPacketReader wraps buf for sequential decoding starting at offset 0.
func NewPacketReader(buf []byte) *PacketReader {
	return &PacketReader{buf: buf}
}

// Len returns the total buffer length.
func (r *PacketReader) Len() int {
	return len(r.buf)
}

// Remaining returns the number of unread bytes.
func (r *PacketReader) Remaining() int {
	return len(r.buf) - r.cursor
}

// Cursor returns the current read offset.
func (r *PacketReader) Cursor() int {
	return r.cursor
}

// Seek repositions the cursor to an absolute offset, used by the dispatch
// logic to position the reader at the payload before handing it to a caller.
func (r *PacketReader) Seek(offset int) {
	r.cursor = offset
}

func (r *PacketReader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, ErrShortRead
	}
	b := r.buf[r.cursor : r.cursor+n]
	r.cursor += n
	return b, nil
}

// ReadU8 reads a single byte.
func (r *PacketReader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads a single byte as a boolean; any non-zero value is true.
func (r *PacketReader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadU32 reads an unsigned 32-bit big-endian integer.
func (r *PacketReader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadI32 reads a signed 32-bit big-endian integer.
func (r *PacketReader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU64 reads an unsigned 64-bit big-endian integer.
func (r *PacketReader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadI64 reads a signed 64-bit big-endian integer.
func (r *PacketReader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadUTF8String reads a u32 byte-length prefix followed by that many
// raw UTF-8 bytes.
func (r *PacketReader) ReadUTF8String() (string, error) {
	n, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// readIDWidth reads a value of the given width: 4 reads 32 bits zero-
// extended to 64, 8 reads the full 64-bit value.
func (r *PacketReader) readIDWidth(width int) (uint64, error) {
	switch width {
	case 4:
		v, err := r.ReadU32()
		return uint64(v), err
	case 8:
		return r.ReadU64()
	default:
		idSizeContractViolation("ID width must be 4 or 8 bytes")
		return 0, nil
	}
}

// ReadFieldID reads a FieldID at the negotiated field width.
func (r *PacketReader) ReadFieldID(sizes IDSizes) (uint64, error) {
	w, err := sizes.FieldIDSize()
	if err != nil {
		return 0, err
	}
	return r.readIDWidth(w)
}

// ReadMethodID reads a MethodID at the negotiated method width.
func (r *PacketReader) ReadMethodID(sizes IDSizes) (uint64, error) {
	w, err := sizes.MethodIDSize()
	if err != nil {
		return 0, err
	}
	return r.readIDWidth(w)
}

// ReadObjectID reads an ObjectID at the negotiated object width.
func (r *PacketReader) ReadObjectID(sizes IDSizes) (uint64, error) {
	w, err := sizes.ObjectIDSize()
	if err != nil {
		return 0, err
	}
	return r.readIDWidth(w)
}

// ReadReferenceTypeID reads a ReferenceTypeID at the negotiated width.
func (r *PacketReader) ReadReferenceTypeID(sizes IDSizes) (uint64, error) {
	w, err := sizes.ReferenceTypeIDSize()
	if err != nil {
		return 0, err
	}
	return r.readIDWidth(w)
}

// ReadFrameID reads a FrameID at the negotiated frame width.
func (r *PacketReader) ReadFrameID(sizes IDSizes) (uint64, error) {
	w, err := sizes.FrameIDSize()
	if err != nil {
		return 0, err
	}
	return r.readIDWidth(w)
}

// Header fields, extracted directly by the reader loop before handing the
// PacketReader off to the matching pending reply.

// PacketLength reads the length field at offset 0 without disturbing the
// cursor.
func (r *PacketReader) PacketLength() (uint32, error) {
	if len(r.buf) < 4 {
		return 0, ErrShortRead
	}
	return binary.BigEndian.Uint32(r.buf[0:4]), nil
}

// PacketID reads the id field at offset 4 without disturbing the cursor.
func (r *PacketReader) PacketID() (uint32, error) {
	if len(r.buf) < 8 {
		return 0, ErrShortRead
	}
	return binary.BigEndian.Uint32(r.buf[4:8]), nil
}

// PacketFlags reads the flags byte at offset 8 without disturbing the
// cursor.
func (r *PacketReader) PacketFlags() (uint8, error) {
	if len(r.buf) < 9 {
		return 0, ErrShortRead
	}
	return r.buf[8], nil
}

// PacketErrorCode reads the two bytes at offset 9 as a reply error code
// without disturbing the cursor.
func (r *PacketReader) PacketErrorCode() (uint16, error) {
	if len(r.buf) < headerSize {
		return 0, ErrShortRead
	}
	return binary.BigEndian.Uint16(r.buf[9:11]), nil
}

// IsReply reports whether the flags byte has the reply bit set.
func (r *PacketReader) IsReply() (bool, error) {
	flags, err := r.PacketFlags()
	if err != nil {
		return false, err
	}
	return flags&replyFlag != 0, nil
}

// CommandFailedMessage formats the standard message for a non-zero reply
// error code, kept here so session.CommandFailedError.Error() takes its
// wording from one place.
func CommandFailedMessage(code uint16) string {
	return fmt.Sprintf("Command failed: %d", code)
}
