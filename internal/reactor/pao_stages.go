// File: internal/reactor/pao_stages.go
// Project: OS Final Project
// Description: PAO stage functions that build the MST report field by field
// Version: 1.0.0

package reactor

import (
	"fmt"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/pao"
)

// BuildPAOStages returns the reference five-stage chain: the first four
// append, in turn, the vertex and edge counts, the total weight, the longest
// path and the average distance to the record's accumulating message, and the
// final stage appends the pairwise shortest paths, sends the finished
// report to the client, and releases the record's graph. Each stage
// type-asserts its task back to *StageRecord, the only task type a PAO
// server ever submits.
func BuildPAOStages() []pao.Func {
	return []pao.Func{
		appendCounts,
		appendTotalWeight,
		appendLongestPath,
		appendAvgDistance,
		appendShortestPathsAndSend,
	}
}

func appendCounts(task interface{}) {
	rec := task.(*StageRecord)
	rec.Message += fmt.Sprintf("Number of vertices: %d\n", rec.Graph.NumVertices())
	rec.Message += fmt.Sprintf("Number of edges: %d\n", rec.Graph.NumEdges())
}

func appendTotalWeight(task interface{}) {
	rec := task.(*StageRecord)
	rec.Message += fmt.Sprintf("Total weight of edges: %d\n", rec.Graph.TotalWeight())
}

func appendLongestPath(task interface{}) {
	rec := task.(*StageRecord)
	rec.Message += fmt.Sprintf("Longest shortest path: %d\n", rec.Graph.LongestPath())
}

func appendAvgDistance(task interface{}) {
	rec := task.(*StageRecord)
	rec.Message += fmt.Sprintf("The average distance between vertices is: %.4f\n", rec.Graph.AvgDistance())
}

func appendShortestPathsAndSend(task interface{}) {
	rec := task.(*StageRecord)
	rec.Message += "The shortest paths are: \n"
	rec.Message += rec.Graph.AllShortestPathsText()

	_ = rec.Client.send(rec.Message)
	rec.Graph = nil
}
