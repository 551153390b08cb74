package jdwp

import (
	"testing"

	"github.com/backkem/jdwp/pkg/wire"
)

func TestCountModifierEncoding(t *testing.T) {
	sizes := wire.NewIDSizes(8, 8, 8, 8, 8)
	b := wire.NewCommandBuilder(1, CommandSetEventRequest, CommandEventRequestSet)
	Count(5).Encode(b, sizes)
	out := b.Finalize()

	r := wire.NewPacketReader(out)
	r.Seek(11)
	kind, err := r.ReadU8()
	if err != nil || kind != uint8(modKindCount) {
		t.Fatalf("kind = %v, %v", kind, err)
	}
	n, err := r.ReadI32()
	if err != nil || n != 5 {
		t.Fatalf("count = %v, %v", n, err)
	}
}

func TestClassMatchModifierEncoding(t *testing.T) {
	sizes := wire.NewIDSizes(8, 8, 8, 8, 8)
	b := wire.NewCommandBuilder(1, CommandSetEventRequest, CommandEventRequestSet)
	ClassMatch("java.lang.*").Encode(b, sizes)
	out := b.Finalize()

	r := wire.NewPacketReader(out)
	r.Seek(11)
	if kind, _ := r.ReadU8(); kind != uint8(modKindClassMatch) {
		t.Fatalf("kind = %v, want %v", kind, modKindClassMatch)
	}
	s, err := r.ReadUTF8String()
	if err != nil || s != "java.lang.*" {
		t.Fatalf("pattern = %q, %v", s, err)
	}
}

func TestLocationOnlyModifierEncoding(t *testing.T) {
	sizes := wire.NewIDSizes(4, 4, 4, 4, 4)
	b := wire.NewCommandBuilder(1, CommandSetEventRequest, CommandEventRequestSet)
	LocationOnly(TypeTagClass, 0x10, 0x20, 0x30).Encode(b, sizes)
	out := b.Finalize()

	r := wire.NewPacketReader(out)
	r.Seek(11)
	r.ReadU8() // kind
	tag, _ := r.ReadU8()
	if TypeTag(tag) != TypeTagClass {
		t.Fatalf("tag = %v, want Class", tag)
	}
	refType, err := r.ReadReferenceTypeID(sizes)
	if err != nil || refType != 0x10 {
		t.Fatalf("refType = %v, %v", refType, err)
	}
	method, err := r.ReadMethodID(sizes)
	if err != nil || method != 0x20 {
		t.Fatalf("method = %v, %v", method, err)
	}
	idx, err := r.ReadU64()
	if err != nil || idx != 0x30 {
		t.Fatalf("index = %v, %v", idx, err)
	}
}
