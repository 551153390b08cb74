package wire

// IDSizes holds the five ID widths negotiated over VM.ID_SIZES at the start
// of a session. Every width is either 4 or 8 bytes; no other value is valid
// on the wire.
//
// An IDSizes is either unknown (the zero value, before the ID_SIZES reply
// arrives) or known. Encoding an ID field while unknown is a caller bug
// (the session never issues ID-bearing commands before READY); decoding one
// is a protocol error, since it means the peer sent something before the
// handshake finished.
type IDSizes struct {
	known       bool
	fieldSize   int
	methodSize  int
	objectSize  int
	refTypeSize int
	frameSize   int
}

// UnknownIDSizes returns the initial, unnegotiated state.
func UnknownIDSizes() IDSizes {
	return IDSizes{}
}

// NewIDSizes builds a known IDSizes from the five widths in VM.ID_SIZES
// reply order: field, method, object, reference-type, frame. Each width
// must be 4 or 8.
func NewIDSizes(field, method, object, refType, frame int) IDSizes {
	for _, w := range [...]int{field, method, object, refType, frame} {
		if w != 4 && w != 8 {
			idSizeContractViolation("ID width must be 4 or 8 bytes")
		}
	}
	return IDSizes{
		known:       true,
		fieldSize:   field,
		methodSize:  method,
		objectSize:  object,
		refTypeSize: refType,
		frameSize:   frame,
	}
}

// Known reports whether ID_SIZES has completed.
func (s IDSizes) Known() bool {
	return s.known
}

// checked returns width if known, or ErrIDSizesUnknown otherwise. Used on
// the decode path, where an unknown state means the peer is misbehaving.
func (s IDSizes) checked(width int) (int, error) {
	if !s.known {
		return 0, ErrIDSizesUnknown
	}
	return width, nil
}

// assert returns width, panicking if IDSizes is unknown. Used on the encode
// path: the session never builds an ID-bearing command before READY, so
// reaching this while unknown is a programming error.
func (s IDSizes) assert(width int) int {
	if !s.known {
		idSizeContractViolation("ID size used before negotiation")
	}
	return width
}

// FieldIDSize returns the negotiated FieldID width, failing if unknown.
func (s IDSizes) FieldIDSize() (int, error) { return s.checked(s.fieldSize) }

// MethodIDSize returns the negotiated MethodID width, failing if unknown.
func (s IDSizes) MethodIDSize() (int, error) { return s.checked(s.methodSize) }

// ObjectIDSize returns the negotiated ObjectID width, failing if unknown.
func (s IDSizes) ObjectIDSize() (int, error) { return s.checked(s.objectSize) }

// ReferenceTypeIDSize returns the negotiated ReferenceTypeID width, failing if unknown.
func (s IDSizes) ReferenceTypeIDSize() (int, error) { return s.checked(s.refTypeSize) }

// FrameIDSize returns the negotiated FrameID width, failing if unknown.
func (s IDSizes) FrameIDSize() (int, error) { return s.checked(s.frameSize) }

// MustFieldIDSize returns the negotiated FieldID width, panicking if unknown.
func (s IDSizes) MustFieldIDSize() int { return s.assert(s.fieldSize) }

// MustMethodIDSize returns the negotiated MethodID width, panicking if unknown.
func (s IDSizes) MustMethodIDSize() int { return s.assert(s.methodSize) }

// MustObjectIDSize returns the negotiated ObjectID width, panicking if unknown.
func (s IDSizes) MustObjectIDSize() int { return s.assert(s.objectSize) }

// MustReferenceTypeIDSize returns the negotiated ReferenceTypeID width, panicking if unknown.
func (s IDSizes) MustReferenceTypeIDSize() int { return s.assert(s.refTypeSize) }

// MustFrameIDSize returns the negotiated FrameID width, panicking if unknown.
func (s IDSizes) MustFrameIDSize() int { return s.assert(s.frameSize) }
