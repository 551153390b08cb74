package session

// drainWriter is the cooperative writer drain: while the outbound queue
// is non-empty, peek the head, write it in full, and only pop it on
// success. A write failure stops the drain without popping; the reader
// loop will observe the same broken stream and tear the session down.
func (s *Session) drainWriter() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		buf := s.queue[0]
		s.mu.Unlock()

		if _, err := s.conn.Write(buf); err != nil {
			s.log.Warnf("write failed, stopping drain: %v", err)
			return
		}

		s.mu.Lock()
		s.queue = s.queue[1:]
		s.mu.Unlock()

		s.log.Debugf("wrote %d bytes", len(buf))
	}
}
