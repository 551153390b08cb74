package session

import "runtime"

// yieldOnce gives other goroutines (the reader/writer loops) a chance to
// observe the close signal before the underlying stream is torn down.
func yieldOnce() {
	runtime.Gosched()
}
