// File: internal/protocol/protocol_test.go
// Project: OS Final Project
// Version: 1.0.0

package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/protocol"
)

func TestParseLineEmptyMessage(t *testing.T) {
	_, err := protocol.ParseLine("   ")
	assert.Error(t, err)
}

func TestParseLineUnknownCommand(t *testing.T) {
	_, err := protocol.ParseLine("foobar 1 2")
	assert.Error(t, err)
}

func TestParseLineNewGraph(t *testing.T) {
	cmd, err := protocol.ParseLine("NewGraph 3 2")
	require.NoError(t, err)
	assert.Equal(t, protocol.KindNewGraph, cmd.Kind)
	assert.Equal(t, 3, cmd.NumVertices)
	assert.Equal(t, 2, cmd.NumEdges)
}

func TestParseLineNewGraphRejectsNonNumeric(t *testing.T) {
	_, err := protocol.ParseLine("newgraph three 2")
	assert.Error(t, err)
}

func TestParseLineNewEdge(t *testing.T) {
	cmd, err := protocol.ParseLine("newedge 1 2 7")
	require.NoError(t, err)
	assert.Equal(t, protocol.KindNewEdge, cmd.Kind)
	assert.Equal(t, 1, cmd.U)
	assert.Equal(t, 2, cmd.V)
	assert.Equal(t, uint64(7), cmd.Weight)
}

func TestParseLineRemoveEdge(t *testing.T) {
	cmd, err := protocol.ParseLine("removeedge 2 3")
	require.NoError(t, err)
	assert.Equal(t, protocol.KindRemoveEdge, cmd.Kind)
	assert.Equal(t, 2, cmd.U)
	assert.Equal(t, 3, cmd.V)
}

func TestParseLineMST(t *testing.T) {
	cmd, err := protocol.ParseLine("mst KRUSKAL")
	require.NoError(t, err)
	assert.Equal(t, protocol.KindMST, cmd.Kind)
	assert.Equal(t, "kruskal", cmd.Strategy)
}

func TestParseLineWrongArgCount(t *testing.T) {
	_, err := protocol.ParseLine("newedge 1 2")
	assert.Error(t, err)
}
