package jdwp

// ClassInfo describes one loaded reference type as returned by
// VM.CLASSES_BY_SIGNATURE.
type ClassInfo struct {
	Tag    TypeTag
	TypeID ReferenceTypeID
	Status ClassStatus
}

// MethodInfo describes one method of a reference type as returned by
// REFERENCE_TYPE.METHODS.
type MethodInfo struct {
	ID        MethodID
	Name      string
	Signature string
	ModBits   int32
}
