// File: internal/reactor/reactor_test.go
// Project: OS Final Project
// Version: 1.0.0

package reactor

import (
	"bufio"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/errkind"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/graph"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/lfpool"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/protocol"
)

func TestClassifyGraphErrMapsSelfLoopAndDuplicateToDomain(t *testing.T) {
	assert.Equal(t, errkind.Domain, classifyGraphErr(graph.ErrSelfLoop).(*errkind.Error).Kind)
	assert.Equal(t, errkind.Domain, classifyGraphErr(graph.ErrDuplicateEdge).(*errkind.Error).Kind)
}

func TestClassifyGraphErrMapsVertexNotFoundToState(t *testing.T) {
	assert.Equal(t, errkind.State, classifyGraphErr(graph.ErrVertexNotFound).(*errkind.Error).Kind)
}

func TestClassifyGraphErrMapsUnknownToInternal(t *testing.T) {
	assert.Equal(t, errkind.Internal, classifyGraphErr(graph.ErrEmptyGraph).(*errkind.Error).Kind)
}

func TestParseUVWValid(t *testing.T) {
	u, v, w, err := parseUVW("1 2 3")
	require.NoError(t, err)
	assert.Equal(t, 1, u)
	assert.Equal(t, 2, v)
	assert.Equal(t, uint64(3), w)
}

func TestParseUVWWrongFieldCount(t *testing.T) {
	_, _, _, err := parseUVW("1 2")
	assert.Error(t, err)
}

func TestParseUVWRejectsNonPositive(t *testing.T) {
	_, _, _, err := parseUVW("0 2 3")
	assert.Error(t, err)
}

func TestParseUVWRejectsNonNumeric(t *testing.T) {
	_, _, _, err := parseUVW("a 2 3")
	assert.Error(t, err)
}

// newTestSession returns a Session backed by one end of an in-memory pipe,
// and the peer end a test can read acknowledgements/errors from, without
// opening a real socket.
func newTestSession(id string) (*Session, net.Conn) {
	client, peer := net.Pipe()
	return newSession(id, client), peer
}

// readLine reads one newline-terminated message off peer. net.Pipe is
// synchronous: Session.send blocks until the peer reads, so tests run the
// call that writes in a goroutine and read here before waiting on it.
func readLine(t *testing.T, peer net.Conn) string {
	t.Helper()
	line, err := bufio.NewReader(peer).ReadString('\n')
	require.NoError(t, err)
	return line
}

func TestHandleNewGraphWithNoSeedEdgesAcksImmediately(t *testing.T) {
	r := NewLF(lfpool.New(1))
	s, peer := newTestSession("c1")
	defer peer.Close()
	r.sessions[s.ID] = s // handleNewGraph's ack goes through broadcast, not s.send directly

	done := make(chan struct{})
	go func() {
		r.handleNewGraph(s, protocol.Command{NumVertices: 3, NumEdges: 0})
		close(done)
	}()

	line := readLine(t, peer)
	<-done
	assert.Contains(t, line, "3 vertices and 0 edges")
}

func TestHandleSeedEdgeDefersAckUntilAllEdgesConsumed(t *testing.T) {
	r := NewLF(lfpool.New(1))
	s, peer := newTestSession("c1")
	defer peer.Close()
	r.sessions[s.ID] = s // handleSeedEdge's final ack goes through broadcast, not s.send directly

	s.mu.Lock()
	s.graph = graph.New(3)
	s.pendingEdges = 2
	s.mu.Unlock()

	results := make(chan struct{}, 2)
	go func() {
		r.handleSeedEdge(s, "1 2 5")
		results <- struct{}{}
	}()
	<-results

	// One edge still pending: no ack should have been written yet. Confirm
	// by sending the second seed edge, which must produce the only line.
	go func() {
		r.handleSeedEdge(s, "2 3 7")
		results <- struct{}{}
	}()

	line := readLine(t, peer)
	<-results
	assert.Contains(t, line, "3 vertices and 2 edges")

	s.mu.Lock()
	pending := s.pendingEdges
	s.mu.Unlock()
	assert.Equal(t, 0, pending)
}

func TestHandleDispatchesNewEdgeWithoutGraphAsStateError(t *testing.T) {
	r := NewLF(lfpool.New(1))
	s, peer := newTestSession("c1")
	defer peer.Close()

	done := make(chan struct{})
	go func() {
		r.handle(s, "newedge 1 2 3")
		close(done)
	}()

	line := readLine(t, peer)
	<-done
	assert.Contains(t, line, "there is no graph")
}

func TestHandleDispatchesUnparseableLineAsError(t *testing.T) {
	r := NewLF(lfpool.New(1))
	s, peer := newTestSession("c1")
	defer peer.Close()

	done := make(chan struct{})
	go func() {
		r.handle(s, "bogus")
		close(done)
	}()

	line := readLine(t, peer)
	<-done
	assert.Contains(t, line, "unknown command")
}

func TestHandleMSTRejectsDisconnectedGraph(t *testing.T) {
	r := NewLF(lfpool.New(1))
	s, peer := newTestSession("c1")
	defer peer.Close()

	s.mu.Lock()
	s.graph = graph.New(2) // two vertices, no edge: disconnected
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.handleMST(s, protocol.Command{Strategy: "prim"})
		close(done)
	}()

	line := readLine(t, peer)
	<-done
	assert.Contains(t, line, "not connected")
}

func TestHandleMSTDispatchesConnectedGraphToPool(t *testing.T) {
	pool := lfpool.New(1)
	pool.Start()
	defer pool.Stop()

	r := NewLF(pool)
	s, peer := newTestSession("c1")
	defer peer.Close()

	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()

	r.handleMST(s, protocol.Command{Strategy: "kruskal"})

	line := readLine(t, peer)
	assert.NotEmpty(t, line)
}
