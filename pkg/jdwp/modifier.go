package jdwp

import "github.com/backkem/jdwp/pkg/wire"

// EventModifier is a closed set of event request filters. Construct one
// through the typed constructors below; the zero value is not a valid
// modifier. Modeled as a tagged variant with a serialize dispatch rather
// than an open interface hierarchy, matching the fixed EventModifierKind
// wire vocabulary.
type EventModifier struct {
	kind eventModifierKind

	count int32

	thread ThreadID

	classOnly ReferenceTypeID

	classPattern string // ClassMatch / ClassExclude / SourceNameMatch

	locTag    TypeTag
	locType   ReferenceTypeID
	locMethod MethodID
	locIndex  uint64

	excType     ReferenceTypeID
	excCaught   bool
	excUncaught bool

	field     FieldID
	fieldType ReferenceTypeID

	stepThread ThreadID
	stepSize   StepSize
	stepDepth  StepDepth

	instance ObjectID
}

// Count requests that the event only fire after being hit n times.
func Count(n int32) EventModifier {
	return EventModifier{kind: modKindCount, count: n}
}

// ThreadOnly restricts the event to the given thread.
func ThreadOnly(t ThreadID) EventModifier {
	return EventModifier{kind: modKindThreadOnly, thread: t}
}

// ClassOnly restricts the event to the given reference type and its
// subtypes.
func ClassOnly(t ReferenceTypeID) EventModifier {
	return EventModifier{kind: modKindClassOnly, classOnly: t}
}

// ClassMatch restricts the event to classes matching the given pattern.
func ClassMatch(pattern string) EventModifier {
	return EventModifier{kind: modKindClassMatch, classPattern: pattern}
}

// ClassExclude excludes classes matching the given pattern.
func ClassExclude(pattern string) EventModifier {
	return EventModifier{kind: modKindClassExclude, classPattern: pattern}
}

// LocationOnly restricts the event to a specific bytecode location.
func LocationOnly(tag TypeTag, t ReferenceTypeID, m MethodID, index uint64) EventModifier {
	return EventModifier{
		kind: modKindLocationOnly, locTag: tag, locType: t, locMethod: m, locIndex: index,
	}
}

// ExceptionOnly restricts an exception event by exception type (exceptionType
// zero means any type) and whether it fires for caught, uncaught, or both.
func ExceptionOnly(exceptionType ReferenceTypeID, caught, uncaught bool) EventModifier {
	return EventModifier{
		kind: modKindExceptionOnly, excType: exceptionType, excCaught: caught, excUncaught: uncaught,
	}
}

// FieldOnly restricts a field access/modification event to one field.
func FieldOnly(t ReferenceTypeID, f FieldID) EventModifier {
	return EventModifier{kind: modKindFieldOnly, fieldType: t, field: f}
}

// Step configures a single-step event's thread, granularity, and scope.
func Step(t ThreadID, size StepSize, depth StepDepth) EventModifier {
	return EventModifier{kind: modKindStep, stepThread: t, stepSize: size, stepDepth: depth}
}

// InstanceOnly restricts the event to occurrences on the given object.
func InstanceOnly(obj ObjectID) EventModifier {
	return EventModifier{kind: modKindInstanceOnly, instance: obj}
}

// SourceNameMatch restricts class-prepare events by source file name
// pattern.
func SourceNameMatch(pattern string) EventModifier {
	return EventModifier{kind: modKindSourceNameMatch, classPattern: pattern}
}

// Encode appends the modifier's kind byte and wire layout to b. Dispatch
// is a plain switch over the closed kind set rather than a virtual call,
// since EventModifierKind is fixed by the protocol.
func (m EventModifier) Encode(b *wire.CommandBuilder, sizes wire.IDSizes) {
	b.AppendU8(uint8(m.kind))
	switch m.kind {
	case modKindCount:
		b.AppendI32(m.count)
	case modKindThreadOnly:
		b.AppendObjectID(sizes, uint64(m.thread))
	case modKindClassOnly:
		b.AppendReferenceTypeID(sizes, uint64(m.classOnly))
	case modKindClassMatch, modKindClassExclude, modKindSourceNameMatch:
		b.AppendUTF8String(m.classPattern)
	case modKindLocationOnly:
		b.AppendU8(uint8(m.locTag)).
			AppendReferenceTypeID(sizes, uint64(m.locType)).
			AppendMethodID(sizes, uint64(m.locMethod)).
			AppendU64(m.locIndex)
	case modKindExceptionOnly:
		b.AppendReferenceTypeID(sizes, uint64(m.excType)).
			AppendBool(m.excCaught).
			AppendBool(m.excUncaught)
	case modKindFieldOnly:
		b.AppendReferenceTypeID(sizes, uint64(m.fieldType)).
			AppendFieldID(sizes, uint64(m.field))
	case modKindStep:
		b.AppendObjectID(sizes, uint64(m.stepThread)).
			AppendI32(int32(m.stepSize)).
			AppendI32(int32(m.stepDepth))
	case modKindInstanceOnly:
		b.AppendObjectID(sizes, uint64(m.instance))
	}
}
