// Package session implements the JDWP session core: handshake, ID size
// negotiation, the framed reader/writer loop pair, and the request/reply
// multiplexer that the public command API is built on.
package session

import (
	"context"
	"io"
	"sync"

	"github.com/backkem/jdwp/pkg/jdwp"
	"github.com/backkem/jdwp/pkg/wire"
	"github.com/pion/logging"
)

// Session owns a connected duplex stream and multiplexes JDWP commands
// and replies over it. A Session is created with Open and is safe for
// concurrent use by multiple callers.
type Session struct {
	conn io.ReadWriteCloser
	log  logging.LeveledLogger
	cfg  Config

	mu       sync.Mutex
	state    State
	nextID   uint32
	sizes    wire.IDSizes
	pending  map[uint32]*pendingReply
	queue    [][]byte
	draining bool

	obsMu     sync.Mutex
	observers []func(error)

	closeOnce sync.Once
	closeCh   chan struct{}
	readerWg  sync.WaitGroup
}

// Open performs the JDWP handshake and ID_SIZES negotiation over conn and
// returns a Session in the READY state. conn is assumed already connected;
// Open never dials. ctx bounds only the handshake and ID_SIZES exchange.
func Open(ctx context.Context, conn io.ReadWriteCloser, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Session{
		conn:    conn,
		cfg:     cfg,
		state:   StateCreated,
		nextID:  1,
		sizes:   wire.UnknownIDSizes(),
		pending: make(map[uint32]*pendingReply),
		queue:   make([][]byte, 0, cfg.QueueSize),
		closeCh: make(chan struct{}),
	}
	if cfg.LoggerFactory != nil {
		s.log = cfg.LoggerFactory.NewLogger("jdwp-session")
	} else {
		s.log = noopLogger{}
	}

	hctx, cancel := context.WithTimeout(ctx, s.cfg.HandshakeTimeout)
	defer cancel()
	if err := s.handshake(hctx); err != nil {
		s.conn.Close()
		return nil, err
	}

	s.readerWg.Add(1)
	go s.readLoop()

	reader, err := s.execute(ctx, jdwp.CommandSetVM, jdwp.CommandVMIDSizes, nil)
	if err != nil {
		s.Close()
		return nil, err
	}
	sizes, err := decodeIDSizes(reader)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.mu.Lock()
	s.sizes = sizes
	s.state = StateReady
	s.mu.Unlock()
	s.log.Infof("session ready, id sizes: %+v", sizes)

	return s, nil
}

// State reports the session's current lifecycle stage.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnClosed registers a callback invoked exactly once when the session
// transitions to CLOSED, with the error that caused it. Even a
// caller-initiated Close surfaces a non-nil error here: closing the
// stream makes the reader loop's pending read fail, and that failure
// is what actually drives teardown. Observers registered during
// teardown are not invoked for that teardown.
func (s *Session) OnClosed(fn func(error)) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, fn)
}

// Close idempotently tears the session down: it signals the reader/writer,
// yields once, then closes the underlying stream. The reader loop observes
// the resulting I/O error and completes the rest of teardown (failing all
// pending replies, firing stop observers, transitioning to CLOSED).
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.closeCh)
		yieldOnce()
		s.conn.Close()
	})
	s.readerWg.Wait()
	return nil
}
