package jdwp

// ObjectID identifies an object in the target VM. Zero denotes null.
type ObjectID uint64

// ThreadID identifies a thread, a specialization of ObjectID's width.
type ThreadID uint64

// ReferenceTypeID identifies a loaded class, interface, or array type.
// Zero denotes null.
type ReferenceTypeID uint64

// MethodID identifies a method within a reference type.
type MethodID uint64

// FieldID identifies a field within a reference type.
type FieldID uint64

// EventRequestID identifies an installed event request, assigned by the
// target VM in the SET reply.
type EventRequestID int32
