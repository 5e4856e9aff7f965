// File: internal/pao/pao_test.go
// Project: OS Final Project
// Version: 1.0.0

package pao_test

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/pao"
)

type stringTask struct {
	mu  sync.Mutex
	val string
}

func (s *stringTask) append(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.val += strconv.Itoa(i)
}

func (s *stringTask) get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val
}

func appendIndexStage(index int) pao.Func {
	return func(task interface{}) {
		task.(*stringTask).append(index)
	}
}

func TestThreeStagePipelineOrdersEachTaskThroughAllStages(t *testing.T) {
	p := pao.New([]pao.Func{appendIndexStage(0), appendIndexStage(1), appendIndexStage(2)})
	p.Start()
	defer p.Stop()

	t1, t2 := &stringTask{}, &stringTask{}
	p.AddTask(t1)
	p.AddTask(t2)

	deadline := time.Now().Add(5 * time.Second)
	for (t1.get() != "012" || t2.get() != "012") && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	assert.Equal(t, "012", t1.get())
	assert.Equal(t, "012", t2.get())
}

func TestTasksFlowThroughStagesInSubmissionOrder(t *testing.T) {
	var mu sync.Mutex
	var arrivalOrder []int

	recordStage := func(task interface{}) {
		mu.Lock()
		arrivalOrder = append(arrivalOrder, task.(int))
		mu.Unlock()
	}

	p := pao.New([]pao.Func{recordStage})
	p.Start()

	const n = 20
	for i := 0; i < n; i++ {
		p.AddTask(i)
	}
	p.Stop()

	mu.Lock()
	defer mu.Unlock()
	expected := make([]int, n)
	for i := range expected {
		expected[i] = i
	}
	assert.Equal(t, expected, arrivalOrder)
}
