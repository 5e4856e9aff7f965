// File: internal/pao/pao.go
// Project: OS Final Project
// Description: Pipeline of Active Objects with per-stage inboxes
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-03

// Package pao implements a Pipeline of Active Objects: an ordered chain of
// stages, each a private FIFO inbox plus one worker goroutine, forwarding
// the same task record through every stage in the order it entered stage 0.
//
// This is a direct port of the original PAO class: each stage's function
// mutates the task in place and, unless it is the tail stage, hands the same
// task pointer to the next stage's inbox and wakes it. Stages run
// concurrently — distinct tasks may occupy distinct stages at the same
// time — but per-stage FIFO order is preserved end to end.
package pao

import (
	"sync"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/logger"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/metrics"
)

var log = logger.WithComponent("pao")

// Func is a stage's unit of work: it mutates task in place.
type Func func(task interface{})

type stage struct {
	fn Func

	mu    sync.Mutex
	cond  *sync.Cond
	inbox []interface{}
}

// Pipeline is a fixed, ordered chain of stages.
type Pipeline struct {
	stages []*stage
	stop   bool
	stopMu sync.Mutex
	wg     sync.WaitGroup
}

// New builds a pipeline with one stage per function, in order.
func New(functions []Func) *Pipeline {
	p := &Pipeline{stages: make([]*stage, len(functions))}
	for i, fn := range functions {
		s := &stage{fn: fn}
		s.cond = sync.NewCond(&s.mu)
		p.stages[i] = s
	}
	return p
}

// AddTask enqueues task into stage 0 and wakes it.
func (p *Pipeline) AddTask(task interface{}) {
	s := p.stages[0]
	s.mu.Lock()
	s.inbox = append(s.inbox, task)
	s.mu.Unlock()
	s.cond.Signal()
}

// Start resets the stop flag and spawns one goroutine per stage.
func (p *Pipeline) Start() {
	p.stopMu.Lock()
	p.stop = false
	p.stopMu.Unlock()

	log.Debug("starting PAO pipeline with %d stages", len(p.stages))
	for i, s := range p.stages {
		var next *stage
		if i+1 < len(p.stages) {
			next = p.stages[i+1]
		}
		p.wg.Add(1)
		go p.run(i, s, next)
	}
}

// Stop sets the stop flag and wakes every stage so it can observe the flag
// and exit once its inbox drains, then joins all stage goroutines.
func (p *Pipeline) Stop() {
	p.stopMu.Lock()
	p.stop = true
	p.stopMu.Unlock()

	for _, s := range p.stages {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	}
	p.wg.Wait()
	log.Debug("PAO pipeline stopped")
}

func (p *Pipeline) stopped() bool {
	p.stopMu.Lock()
	defer p.stopMu.Unlock()
	return p.stop
}

func (p *Pipeline) run(index int, s *stage, next *stage) {
	defer p.wg.Done()
	for {
		s.mu.Lock()
		for len(s.inbox) == 0 && !p.stopped() {
			s.cond.Wait()
		}
		if len(s.inbox) == 0 && p.stopped() {
			s.mu.Unlock()
			return
		}
		task := s.inbox[0]
		s.inbox = s.inbox[1:]
		s.mu.Unlock()

		if s.fn != nil {
			s.fn(task)
		}

		if next != nil {
			next.mu.Lock()
			next.inbox = append(next.inbox, task)
			next.mu.Unlock()
			next.cond.Signal()
			metrics.Global().IncrementPAOTasksForwarded()
		}
	}
}
