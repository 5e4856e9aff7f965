// File: internal/protocol/protocol.go
// Project: OS Final Project
// Description: Line-oriented wire protocol parsing and reply formatting
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-04

// Package protocol implements the server's line-oriented wire protocol:
// parsing one whitespace-delimited, case-insensitive command per line, and
// formatting the acknowledgements and error strings the specification
// defines. Parsing itself deliberately stays on the standard library
// (strings, strconv) — there is no wire-format library to wire in here,
// since the protocol is plain text by design (see SPEC_FULL.md's DOMAIN
// STACK note) — but every parse still goes through the shared logger for
// per-command tracing, like every other component.
package protocol

import (
	"strconv"
	"strings"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/errkind"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/logger"
)

var log = logger.WithComponent("protocol")

// WelcomeBanner is sent to every client immediately after accept.
const WelcomeBanner = "Welcome! Commands: newgraph n m | newedge u v w | removeedge u v | mst <prim|kruskal>\n"

// Kind identifies which command a parsed line names.
type Kind int

const (
	KindUnknown Kind = iota
	KindNewGraph
	KindNewEdge
	KindRemoveEdge
	KindMST
)

// Command is one parsed client request.
type Command struct {
	Kind Kind

	// NewGraph
	NumVertices int
	NumEdges    int

	// NewEdge / RemoveEdge (1-based on the wire; ParseLine leaves them
	// 1-based — callers convert to 0-based internally)
	U, V   int
	Weight uint64

	// MST
	Strategy string
}

var commandNames = map[string]Kind{
	"newgraph":   KindNewGraph,
	"newedge":    KindNewEdge,
	"removeedge": KindRemoveEdge,
	"mst":        KindMST,
}

// ParseLine parses one line of client input into a Command. Returns an
// errkind.Parse error for anything malformed: empty input, an unrecognized
// command token, the wrong number of arguments, or non-numeric arguments
// where a number is expected.
func ParseLine(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		log.Debug("parse: empty message")
		return Command{}, errkind.New(errkind.Parse, "empty message")
	}

	kind, ok := commandNames[fields[0]]
	if !ok {
		log.Debug("parse: unknown command %q", fields[0])
		return Command{}, errkind.Newf(errkind.Parse, "unknown command: %s", fields[0])
	}
	log.Debug("parse: command %q, %d argument(s)", fields[0], len(fields)-1)

	switch kind {
	case KindNewGraph:
		if len(fields) != 3 {
			return Command{}, errkind.New(errkind.Parse, "usage: newgraph n m")
		}
		n, err1 := parsePositiveInt(fields[1])
		m, err2 := parsePositiveInt(fields[2])
		if err1 != nil || err2 != nil {
			return Command{}, errkind.New(errkind.Parse, "newgraph requires two positive integers")
		}
		return Command{Kind: kind, NumVertices: n, NumEdges: m}, nil

	case KindNewEdge:
		if len(fields) != 4 {
			return Command{}, errkind.New(errkind.Parse, "usage: newedge u v w")
		}
		u, err1 := parsePositiveInt(fields[1])
		v, err2 := parsePositiveInt(fields[2])
		w, err3 := parsePositiveInt(fields[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return Command{}, errkind.New(errkind.Parse, "newedge requires three positive integers")
		}
		return Command{Kind: kind, U: u, V: v, Weight: uint64(w)}, nil

	case KindRemoveEdge:
		if len(fields) != 3 {
			return Command{}, errkind.New(errkind.Parse, "usage: removeedge u v")
		}
		u, err1 := parsePositiveInt(fields[1])
		v, err2 := parsePositiveInt(fields[2])
		if err1 != nil || err2 != nil {
			return Command{}, errkind.New(errkind.Parse, "removeedge requires two positive integers")
		}
		return Command{Kind: kind, U: u, V: v}, nil

	case KindMST:
		if len(fields) != 2 {
			return Command{}, errkind.New(errkind.Parse, "usage: mst <prim|kruskal>")
		}
		return Command{Kind: kind, Strategy: fields[1]}, nil
	}

	return Command{}, errkind.New(errkind.Parse, "unreachable")
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errkind.New(errkind.Parse, "expected a positive integer")
	}
	return n, nil
}

// AckNewGraph formats the broadcast acknowledgement for newgraph.
func AckNewGraph(n, m int) string {
	return "Client successfully created a new Graph with " + strconv.Itoa(n) +
		" vertices and " + strconv.Itoa(m) + " edges\n"
}

// AckNewEdge formats the broadcast acknowledgement for newedge.
func AckNewEdge(clientID string, u, v int, w uint64) string {
	return "Client " + clientID + " added an edge from " + strconv.Itoa(u) +
		" to " + strconv.Itoa(v) + " with weight " + strconv.FormatUint(w, 10) + "\n"
}

// AckRemoveEdge formats the broadcast acknowledgement for removeedge.
func AckRemoveEdge(clientID string, u, v int) string {
	return "Client " + clientID + " removed an edge from " + strconv.Itoa(u) +
		" to " + strconv.Itoa(v) + "\n"
}
