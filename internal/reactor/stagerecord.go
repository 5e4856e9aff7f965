// File: internal/reactor/stagerecord.go
// Project: OS Final Project
// Version: 1.0.0

package reactor

import "github.com/oriyadahan12/OS-FINAL-PROJECT/internal/graph"

// StageRecord is the PAO task record: the owned MST result graph, the
// accumulating report text, and the client it will eventually be sent to.
// It is owned by whichever stage currently holds it and moves to the next
// stage's inbox once that stage's function returns.
type StageRecord struct {
	Graph   *graph.Graph
	Message string
	Client  *Session
}
