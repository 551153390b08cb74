package session

import (
	"context"
	"encoding/binary"
	"net"
	"testing"
	"time"

	"github.com/backkem/jdwp/pkg/jdwp"
	"github.com/backkem/jdwp/pkg/session/sessiontest"
	"github.com/pion/transport/v3/test"
)

func TestHandshakeHappyPath(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	conn, _ := sessiontest.New(sessiontest.Script{})
	s, err := Open(context.Background(), conn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if s.State() != StateReady {
		t.Fatalf("state = %v, want Ready", s.State())
	}
	sizes := s.idSizes()
	if w := sizes.MustFieldIDSize(); w != 8 {
		t.Fatalf("field size = %d, want 8", w)
	}
}

func TestHandshakeMismatch(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	conn, _ := sessiontest.New(sessiontest.Script{BadHandshake: true})
	s, err := Open(context.Background(), conn)
	if err == nil {
		s.Close()
		t.Fatal("expected handshake error")
	}
	if _, ok := err.(*ProtocolError); !ok {
		t.Fatalf("err = %T, want *ProtocolError", err)
	}
}

func TestClassesBySignatureExactOne(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	payload := []byte{
		0, 0, 0, 1, // N = 1
		1,                                   // TypeTag = CLASS
		0, 0, 0, 0, 0, 0, 0, 0x42,           // RefTypeID = 0x42
		0, 0, 0, 7, // status = VERIFIED|PREPARED|INITIALIZED
	}
	conn, _ := sessiontest.New(sessiontest.Script{
		Replies: []sessiontest.Reply{
			{CommandSet: jdwp.CommandSetVM, Command: jdwp.CommandVMClassesBySignature, Payload: payload},
		},
	})
	s, err := Open(context.Background(), conn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	class, err := s.GetClassBySignature(context.Background(), "Ljava/lang/String;")
	if err != nil {
		t.Fatalf("GetClassBySignature: %v", err)
	}
	if class.Tag != jdwp.TypeTagClass || class.TypeID != 0x42 {
		t.Fatalf("class = %+v", class)
	}
	want := jdwp.ClassStatusVerified | jdwp.ClassStatusPrepared | jdwp.ClassStatusInitialized
	if class.Status != want {
		t.Fatalf("status = %v, want %v", class.Status, want)
	}
}

func TestClassesBySignatureAmbiguous(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	payload := []byte{
		0, 0, 0, 2,
		1, 0, 0, 0, 0, 0, 0, 0, 0x01, 0, 0, 0, 0,
		1, 0, 0, 0, 0, 0, 0, 0, 0x02, 0, 0, 0, 0,
	}
	conn, _ := sessiontest.New(sessiontest.Script{
		Replies: []sessiontest.Reply{
			{CommandSet: jdwp.CommandSetVM, Command: jdwp.CommandVMClassesBySignature, Payload: payload},
		},
	})
	s, err := Open(context.Background(), conn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	_, err = s.GetClassBySignature(context.Background(), "Ljava/lang/String;")
	if err == nil {
		t.Fatal("expected ambiguous error")
	}
	if _, ok := err.(*InvalidArgumentError); !ok {
		t.Fatalf("err = %T, want *InvalidArgumentError", err)
	}
}

func TestCommandFailure(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	conn, _ := sessiontest.New(sessiontest.Script{
		Replies: []sessiontest.Reply{
			{CommandSet: jdwp.CommandSetEventRequest, Command: jdwp.CommandEventRequestClearAllBreakpoints, Code: 100},
		},
	})
	s, err := Open(context.Background(), conn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	err = s.ClearAllBreakpoints(context.Background())
	cf, ok := err.(*CommandFailedError)
	if !ok {
		t.Fatalf("err = %T, want *CommandFailedError", err)
	}
	if cf.Code != 100 {
		t.Fatalf("code = %d, want 100", cf.Code)
	}
	if s.State() != StateReady {
		t.Fatalf("state = %v, want Ready after command failure", s.State())
	}
}

func TestReaderFaultFlushesPending(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	conn, _ := sessiontest.New(sessiontest.Script{CloseAfterHeaderByte: true})
	s, err := Open(context.Background(), conn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	closed := make(chan error, 1)
	s.OnClosed(func(err error) { closed <- err })

	errs := make(chan error, 2)
	go func() {
		errs <- s.ClearAllBreakpoints(context.Background())
	}()
	go func() {
		errs <- s.ClearAllBreakpoints(context.Background())
	}()

	for i := 0; i < 2; i++ {
		err := <-errs
		if _, ok := err.(*TransportError); !ok {
			t.Fatalf("err = %T, want *TransportError", err)
		}
	}

	<-closed
	if s.State() != StateClosed {
		t.Fatalf("state = %v, want Closed", s.State())
	}
}

func TestCommandAfterCloseIsInvalidOperation(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	conn, _ := sessiontest.New(sessiontest.Script{})
	s, err := Open(context.Background(), conn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	err = s.ClearAllBreakpoints(context.Background())
	if _, ok := err.(*InvalidOperationError); !ok {
		t.Fatalf("err = %T, want *InvalidOperationError", err)
	}
}

func TestContextCancellationYieldsCancelledError(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	// No scripted reply for CLEAR_ALL_BREAKPOINTS: the fixture drops it
	// silently, so the call can only ever resolve via ctx cancellation.
	conn, _ := sessiontest.New(sessiontest.Script{})
	s, err := Open(context.Background(), conn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.ClearAllBreakpoints(ctx)
	ce, ok := err.(*CancelledError)
	if !ok {
		t.Fatalf("err = %T, want *CancelledError", err)
	}
	if ce.Unwrap() != context.Canceled {
		t.Fatalf("unwrap = %v, want context.Canceled", ce.Unwrap())
	}
}

func TestReadPacketBoundaries(t *testing.T) {
	lim := test.TimeOut(5 * time.Second)
	defer lim.Stop()

	tests := []struct {
		name    string
		length  uint32
		wantErr string
		wantLen int
	}{
		{name: "below header size", length: headerSize - 1, wantErr: "packet length too small"},
		{name: "above max packet size", length: uint32(jdwp.MaxPacketSize) + 1, wantErr: "packet length too large"},
		{name: "exactly header size, empty payload", length: headerSize, wantLen: headerSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, vm := net.Pipe()
			defer vm.Close()
			s := &Session{conn: client, log: noopLogger{}}

			header := make([]byte, headerSize)
			binary.BigEndian.PutUint32(header[0:4], tt.length)

			go vm.Write(header)

			buf, err := s.readPacket()
			if tt.wantErr != "" {
				pe, ok := err.(*ProtocolError)
				if !ok {
					t.Fatalf("err = %T, want *ProtocolError", err)
				}
				if pe.Msg != tt.wantErr {
					t.Fatalf("msg = %q, want %q", pe.Msg, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readPacket: %v", err)
			}
			if len(buf) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(buf), tt.wantLen)
			}
		})
	}
}
