// File: internal/errkind/errkind.go
// Project: OS Final Project
// Description: Classified error kinds and client-facing propagation policy
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-02

// Package errkind classifies the failure modes a session or the reactor can
// encounter, following the propagation policy in the specification's error
// handling design: parse/state/domain errors are surfaced to the requesting
// client and the session continues; io errors tear the session down;
// internal invariant violations abort the process.
package errkind

import "fmt"

// Kind enumerates the error categories recognized by the reactor.
type Kind int

const (
	// Parse marks a malformed command line.
	Parse Kind = iota
	// State marks an operation attempted without its required precondition
	// (no graph, graph not connected).
	State
	// Domain marks a rejected but well-formed request (unknown strategy,
	// self-loop or duplicate edge endpoints).
	Domain
	// IO marks a read/write failure on a client or listener socket.
	IO
	// Resource marks allocation or descriptor exhaustion.
	Resource
	// Internal marks a violated invariant — these never fire under the
	// stated preconditions, and indicate a programming bug if they do.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse_error"
	case State:
		return "state_error"
	case Domain:
		return "domain_error"
	case IO:
		return "io_error"
	case Resource:
		return "resource_error"
	case Internal:
		return "internal_invariant"
	default:
		return "unknown_error"
	}
}

// Error is a classified error carrying the message sent verbatim to the
// requesting client for client-facing kinds.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New constructs a classified error.
func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// Newf constructs a classified error with a formatted message.
func Newf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// As reports whether err is an *Error of the given kind.
func As(err error, k Kind) bool {
	ce, ok := err.(*Error)
	return ok && ce.Kind == k
}

// ClientFacing reports whether a kind's message is meant to be sent verbatim
// to the client that triggered it, per the propagation policy.
func (k Kind) ClientFacing() bool {
	switch k {
	case Parse, State, Domain:
		return true
	default:
		return false
	}
}
