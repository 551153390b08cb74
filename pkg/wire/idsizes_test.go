package wire

import "testing"

func TestUnknownIDSizesFailsChecked(t *testing.T) {
	s := UnknownIDSizes()
	if s.Known() {
		t.Fatal("zero value should be unknown")
	}
	if _, err := s.FieldIDSize(); err != ErrIDSizesUnknown {
		t.Fatalf("err = %v, want ErrIDSizesUnknown", err)
	}
}

func TestUnknownIDSizesPanicsOnAssert(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	UnknownIDSizes().MustFieldIDSize()
}

func TestNewIDSizesRejectsInvalidWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid width")
		}
	}()
	NewIDSizes(4, 4, 4, 4, 6)
}

func TestNewIDSizesKnown(t *testing.T) {
	s := NewIDSizes(4, 8, 4, 8, 4)
	if !s.Known() {
		t.Fatal("expected known")
	}
	if w := s.MustFieldIDSize(); w != 4 {
		t.Fatalf("field width = %d, want 4", w)
	}
	if w := s.MustMethodIDSize(); w != 8 {
		t.Fatalf("method width = %d, want 8", w)
	}
	if w, err := s.ReferenceTypeIDSize(); err != nil || w != 8 {
		t.Fatalf("refType width = %d, %v, want 8, nil", w, err)
	}
}
