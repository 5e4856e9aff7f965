// File: internal/reactor/session.go
// Project: OS Final Project
// Description: Per-connection session state and serialized writes
// Version: 1.0.0

package reactor

import (
	"bufio"
	"net"
	"sync"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/graph"
)

// Session is one connected client's endpoint plus its owned, nullable graph.
// Per the specification's concurrency model, the graph itself is not
// internally synchronized — mu is the external lock serializing access to
// both the graph pointer and pendingEdges.
type Session struct {
	ID   string
	conn net.Conn

	writeMu sync.Mutex
	bw      *bufio.Writer

	mu           sync.Mutex
	graph        *graph.Graph
	pendingEdges int // remaining "u v w" seed lines expected after newgraph
}

func newSession(id string, conn net.Conn) *Session {
	return &Session{
		ID:   id,
		conn: conn,
		bw:   bufio.NewWriter(conn),
	}
}

// send writes msg to the client socket. Safe for concurrent callers: the
// reactor and a pool/stage worker may both write to the same session, and
// writeMu serializes whole messages so their bytes never interleave.
func (s *Session) send(msg string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.bw.WriteString(msg); err != nil {
		return err
	}
	return s.bw.Flush()
}

func (s *Session) close() error {
	return s.conn.Close()
}
