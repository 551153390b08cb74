package session

import (
	"time"

	"github.com/pion/logging"
)

// Config holds the session-level tunables. The dial target itself is not
// part of Config: the caller always supplies an already-connected duplex
// stream to Open.
type Config struct {
	// LoggerFactory builds the session's named logger. If nil, logging is
	// a no-op.
	LoggerFactory logging.LoggerFactory

	// QueueSize is the initial capacity hint for the outbound queue.
	QueueSize int

	// HandshakeTimeout bounds the handshake write/read only; once READY,
	// the reader and writer loops run without a timeout.
	HandshakeTimeout time.Duration
}

const (
	defaultQueueSize        = 16
	defaultHandshakeTimeout = 10 * time.Second
)

func defaultConfig() Config {
	return Config{
		QueueSize:        defaultQueueSize,
		HandshakeTimeout: defaultHandshakeTimeout,
	}
}

// Option configures a Session at Open time.
type Option func(*Config)

// WithLogger sets the LoggerFactory used to build the session's named
// logger.
func WithLogger(f logging.LoggerFactory) Option {
	return func(c *Config) {
		c.LoggerFactory = f
	}
}

// WithQueueSize overrides the outbound queue's initial capacity hint.
func WithQueueSize(n int) Option {
	return func(c *Config) {
		c.QueueSize = n
	}
}

// WithHandshakeTimeout overrides how long the handshake write/read may
// take before failing with a transport error.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.HandshakeTimeout = d
	}
}
