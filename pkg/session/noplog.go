package session

// noopLogger discards everything. Used when the caller supplies no
// logging.LoggerFactory, so call sites never need a nil check.
type noopLogger struct{}

func (noopLogger) Trace(string)          {}
func (noopLogger) Tracef(string, ...any) {}
func (noopLogger) Debug(string)          {}
func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Info(string)           {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warn(string)           {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Error(string)          {}
func (noopLogger) Errorf(string, ...any) {}
