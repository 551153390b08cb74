package session

import "github.com/backkem/jdwp/pkg/wire"

// decodeIDSizes reads the five int32 widths from a VM.ID_SIZES reply, in
// wire order: field, method, object, reference-type, frame.
func decodeIDSizes(r *wire.PacketReader) (wire.IDSizes, error) {
	field, err := r.ReadI32()
	if err != nil {
		return wire.IDSizes{}, &ProtocolError{Msg: "truncated ID_SIZES reply", Err: err}
	}
	method, err := r.ReadI32()
	if err != nil {
		return wire.IDSizes{}, &ProtocolError{Msg: "truncated ID_SIZES reply", Err: err}
	}
	object, err := r.ReadI32()
	if err != nil {
		return wire.IDSizes{}, &ProtocolError{Msg: "truncated ID_SIZES reply", Err: err}
	}
	refType, err := r.ReadI32()
	if err != nil {
		return wire.IDSizes{}, &ProtocolError{Msg: "truncated ID_SIZES reply", Err: err}
	}
	frame, err := r.ReadI32()
	if err != nil {
		return wire.IDSizes{}, &ProtocolError{Msg: "truncated ID_SIZES reply", Err: err}
	}
	for _, w := range [...]int32{field, method, object, refType, frame} {
		if w != 4 && w != 8 {
			return wire.IDSizes{}, &ProtocolError{Msg: "ID_SIZES reply has a width other than 4 or 8"}
		}
	}
	return wire.NewIDSizes(int(field), int(method), int(object), int(refType), int(frame)), nil
}
