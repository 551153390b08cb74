package session

import (
	"context"
	"fmt"

	"github.com/backkem/jdwp/pkg/jdwp"
	"github.com/backkem/jdwp/pkg/wire"
)

// GetClassesBySignature returns every loaded reference type matching the
// given JVM type signature (e.g. "Ljava/lang/String;"). Zero or more than
// one entry is a valid, non-error result; callers wanting exactly one
// should use GetClassBySignature.
func (s *Session) GetClassesBySignature(ctx context.Context, signature string) ([]jdwp.ClassInfo, error) {
	r, err := s.execute(ctx, jdwp.CommandSetVM, jdwp.CommandVMClassesBySignature, func(b *wire.CommandBuilder) {
		b.AppendUTF8String(signature)
	})
	if err != nil {
		return nil, err
	}

	n, err := r.ReadI32()
	if err != nil {
		return nil, &ProtocolError{Msg: "truncated CLASSES_BY_SIGNATURE reply", Err: err}
	}
	if n < 0 {
		return nil, &ProtocolError{Msg: "negative count in CLASSES_BY_SIGNATURE reply"}
	}

	sizes := s.idSizes()
	classes := make([]jdwp.ClassInfo, 0, n)
	for i := int32(0); i < n; i++ {
		tag, err := r.ReadU8()
		if err != nil {
			return nil, &ProtocolError{Msg: "truncated CLASSES_BY_SIGNATURE entry", Err: err}
		}
		refType, err := r.ReadReferenceTypeID(sizes)
		if err != nil {
			return nil, &ProtocolError{Msg: "truncated CLASSES_BY_SIGNATURE entry", Err: err}
		}
		status, err := r.ReadI32()
		if err != nil {
			return nil, &ProtocolError{Msg: "truncated CLASSES_BY_SIGNATURE entry", Err: err}
		}
		classes = append(classes, jdwp.ClassInfo{
			Tag:    jdwp.TypeTag(tag),
			TypeID: jdwp.ReferenceTypeID(refType),
			Status: jdwp.ClassStatus(status),
		})
	}
	return classes, nil
}

// GetClassBySignature resolves exactly one class for signature, failing
// with InvalidArgumentError if zero or more than one candidate exists.
func (s *Session) GetClassBySignature(ctx context.Context, signature string) (jdwp.ClassInfo, error) {
	classes, err := s.GetClassesBySignature(ctx, signature)
	if err != nil {
		return jdwp.ClassInfo{}, err
	}
	switch len(classes) {
	case 0:
		return jdwp.ClassInfo{}, &InvalidArgumentError{Msg: fmt.Sprintf("class %q not found", signature)}
	case 1:
		return classes[0], nil
	default:
		return jdwp.ClassInfo{}, &InvalidArgumentError{Msg: fmt.Sprintf("class %q is ambiguous", signature)}
	}
}

// GetMethods lists the methods declared on the given reference type.
func (s *Session) GetMethods(ctx context.Context, refType jdwp.ReferenceTypeID) ([]jdwp.MethodInfo, error) {
	sizes := s.idSizes()
	r, err := s.execute(ctx, jdwp.CommandSetReferenceType, jdwp.CommandReferenceTypeMethods, func(b *wire.CommandBuilder) {
		b.AppendReferenceTypeID(sizes, uint64(refType))
	})
	if err != nil {
		return nil, err
	}

	n, err := r.ReadI32()
	if err != nil {
		return nil, &ProtocolError{Msg: "truncated METHODS reply", Err: err}
	}
	if n < 0 {
		return nil, &ProtocolError{Msg: "negative count in METHODS reply"}
	}

	methods := make([]jdwp.MethodInfo, 0, n)
	for i := int32(0); i < n; i++ {
		id, err := r.ReadMethodID(sizes)
		if err != nil {
			return nil, &ProtocolError{Msg: "truncated METHODS entry", Err: err}
		}
		name, err := r.ReadUTF8String()
		if err != nil {
			return nil, &ProtocolError{Msg: "truncated METHODS entry", Err: err}
		}
		sig, err := r.ReadUTF8String()
		if err != nil {
			return nil, &ProtocolError{Msg: "truncated METHODS entry", Err: err}
		}
		mods, err := r.ReadI32()
		if err != nil {
			return nil, &ProtocolError{Msg: "truncated METHODS entry", Err: err}
		}
		methods = append(methods, jdwp.MethodInfo{
			ID:        jdwp.MethodID(id),
			Name:      name,
			Signature: sig,
			ModBits:   mods,
		})
	}
	return methods, nil
}

// SetEventRequest installs an event request and returns its assigned id.
func (s *Session) SetEventRequest(ctx context.Context, kind jdwp.EventKind, policy jdwp.SuspendPolicy, mods []jdwp.EventModifier) (jdwp.EventRequestID, error) {
	sizes := s.idSizes()
	r, err := s.execute(ctx, jdwp.CommandSetEventRequest, jdwp.CommandEventRequestSet, func(b *wire.CommandBuilder) {
		b.AppendU8(uint8(kind)).AppendU8(uint8(policy)).AppendI32(int32(len(mods)))
		for _, m := range mods {
			m.Encode(b, sizes)
		}
	})
	if err != nil {
		return 0, err
	}
	id, err := r.ReadI32()
	if err != nil {
		return 0, &ProtocolError{Msg: "truncated EVENT_REQUEST.SET reply", Err: err}
	}
	return jdwp.EventRequestID(id), nil
}

// ClearEventRequest removes a previously installed event request.
func (s *Session) ClearEventRequest(ctx context.Context, kind jdwp.EventKind, id jdwp.EventRequestID) error {
	_, err := s.execute(ctx, jdwp.CommandSetEventRequest, jdwp.CommandEventRequestClear, func(b *wire.CommandBuilder) {
		b.AppendU8(uint8(kind)).AppendI32(int32(id))
	})
	return err
}

// ClearAllBreakpoints removes every installed breakpoint in one call.
func (s *Session) ClearAllBreakpoints(ctx context.Context) error {
	_, err := s.execute(ctx, jdwp.CommandSetEventRequest, jdwp.CommandEventRequestClearAllBreakpoints, nil)
	return err
}

// idSizes returns the negotiated ID widths. Safe to call once READY;
// command methods never run before Open has populated it.
func (s *Session) idSizes() wire.IDSizes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sizes
}
