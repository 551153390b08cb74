// Package sessiontest provides an in-memory "fake VM" fixture for testing
// the session package without a real JVM. It mirrors the teacher's
// net.Pipe-backed TestManagerPair pattern: tests get a fully wired pair of
// endpoints with no real socket involved.
package sessiontest

import (
	"encoding/binary"
	"io"
	"net"
	"sync"

	"github.com/backkem/jdwp/pkg/jdwp"
)

// Reply is one canned response for a given command-set/command pair. Code
// zero means success with Payload as the reply body; a non-zero Code sends
// an error reply and Payload is ignored.
type Reply struct {
	CommandSet uint8
	Command    uint8
	Code       uint16
	Payload    []byte
}

// Script configures a FakeVM's behavior.
type Script struct {
	// BadHandshake, if true, makes the fixture reply with a mismatched
	// handshake instead of echoing it back.
	BadHandshake bool

	// IDSizes is the five widths returned from VM.ID_SIZES, in field,
	// method, object, reference-type, frame order. Defaults to all 8s.
	IDSizes [5]int32

	// Replies are consumed in order as matching commands arrive.
	Replies []Reply

	// CloseAfterHeaderByte, if true, closes the connection after reading
	// just the first byte of the next command header, simulating a
	// stream that dies mid-packet.
	CloseAfterHeaderByte bool
}

// FakeVM is the server side of an in-memory JDWP connection.
type FakeVM struct {
	conn   net.Conn
	script Script

	mu  sync.Mutex
	err error
}

// New returns a connected (client, *FakeVM) pair over net.Pipe and starts
// the fixture's serving goroutine.
func New(script Script) (net.Conn, *FakeVM) {
	if script.IDSizes == ([5]int32{}) {
		script.IDSizes = [5]int32{8, 8, 8, 8, 8}
	}
	client, server := net.Pipe()
	vm := &FakeVM{conn: server, script: script}
	go vm.serve()
	return client, vm
}

// Err returns the first error the fixture observed while serving, if any.
func (vm *FakeVM) Err() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.err
}

func (vm *FakeVM) setErr(err error) {
	vm.mu.Lock()
	if vm.err == nil {
		vm.err = err
	}
	vm.mu.Unlock()
}

func (vm *FakeVM) serve() {
	defer vm.conn.Close()

	handshake := make([]byte, len(jdwp.HandshakeBytes))
	if _, err := io.ReadFull(vm.conn, handshake); err != nil {
		vm.setErr(err)
		return
	}

	reply := []byte(jdwp.HandshakeBytes)
	if vm.script.BadHandshake {
		reply = []byte("XXXX-XXXXXXXXX")
	}
	if _, err := vm.conn.Write(reply); err != nil {
		vm.setErr(err)
		return
	}
	if vm.script.BadHandshake {
		return
	}

	replies := append([]Reply(nil), vm.script.Replies...)
	idSizesDone := false

	for {
		if vm.script.CloseAfterHeaderByte && idSizesDone {
			one := make([]byte, 1)
			if _, err := io.ReadFull(vm.conn, one); err != nil {
				vm.setErr(err)
				return
			}
			vm.conn.Close()
			return
		}

		header := make([]byte, 11)
		if _, err := io.ReadFull(vm.conn, header); err != nil {
			vm.setErr(err)
			return
		}
		length := binary.BigEndian.Uint32(header[0:4])
		id := binary.BigEndian.Uint32(header[4:8])
		commandSet := header[9]
		command := header[10]

		if length > 11 {
			if _, err := io.ReadFull(vm.conn, make([]byte, length-11)); err != nil {
				vm.setErr(err)
				return
			}
		}

		if commandSet == jdwp.CommandSetVM && command == jdwp.CommandVMIDSizes {
			vm.sendIDSizesReply(id)
			idSizesDone = true
			continue
		}

		idx := -1
		for i, r := range replies {
			if r.CommandSet == commandSet && r.Command == command {
				idx = i
				break
			}
		}
		if idx == -1 {
			continue
		}
		r := replies[idx]
		replies = append(replies[:idx], replies[idx+1:]...)
		payload := r.Payload
		if r.Code != 0 {
			payload = nil
		}
		vm.sendReply(id, r.Code, payload)
	}
}

func (vm *FakeVM) sendIDSizesReply(id uint32) {
	payload := make([]byte, 0, 20)
	for _, w := range vm.script.IDSizes {
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(w))
		payload = append(payload, tmp[:]...)
	}
	vm.sendReply(id, 0, payload)
}

func (vm *FakeVM) sendReply(id uint32, code uint16, payload []byte) {
	buf := make([]byte, 11+len(payload))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(buf)))
	binary.BigEndian.PutUint32(buf[4:8], id)
	buf[8] = 0x80
	binary.BigEndian.PutUint16(buf[9:11], code)
	copy(buf[11:], payload)
	if _, err := vm.conn.Write(buf); err != nil {
		vm.setErr(err)
	}
}
