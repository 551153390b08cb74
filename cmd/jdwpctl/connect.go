package main

import (
	"context"
	"net"

	"github.com/backkem/jdwp/pkg/session"
)

// dialSession dials addr over plain TCP and opens a JDWP session on top of
// it. This is the only place in the repository that calls net.Dial; the
// session library never does.
func dialSession(ctx context.Context, addr string) (*session.Session, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	s, err := session.Open(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}
