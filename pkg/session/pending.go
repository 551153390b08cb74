package session

import "github.com/backkem/jdwp/pkg/wire"

// pendingResult is what a pendingReply's completion hook delivers: exactly
// one of reader or err is set.
type pendingResult struct {
	reader *wire.PacketReader
	err    error
}

// pendingReply is a one-shot completion record keyed by request id. The
// channel is buffered with capacity 1 so the completing side (reader loop
// or teardown) never blocks on a waiter that has already walked away, e.g.
// one whose context was cancelled.
type pendingReply struct {
	done chan pendingResult
}

func newPendingReply() *pendingReply {
	return &pendingReply{done: make(chan pendingResult, 1)}
}

// complete delivers a result. Single-shot: a second call would block
// forever on the full channel, so callers must guarantee at most one
// completion per id (the reader loop removes the entry before completing
// it, and cancellation races are resolved by select in execute).
func (p *pendingReply) complete(res pendingResult) {
	p.done <- res
}
