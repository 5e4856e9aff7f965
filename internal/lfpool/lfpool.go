// File: internal/lfpool/lfpool.go
// Project: OS Final Project
// Description: Leader-Follower thread pool with rotating leadership
// Version: 1.1.0
// Author: Ori Yadahan
// Created: 2026-02-03

// Package lfpool implements a Leader-Follower thread pool: a fixed set of
// workers sharing one FIFO task queue and a rotating leader index. At any
// time exactly one worker is the leader; on waking to find work, the leader
// dequeues the head task, promotes the next worker to leader, then executes
// the task outside the lock while the rest of the pool keeps waiting.
//
// This is a direct port of the original LeaderFollower pattern, with one
// fix over the source: the source's addTask used a single Cond.Signal
// (wake-one), which can wake a non-leader that finds nothing to do and
// re-waits, stalling the just-enqueued task until the leader is separately
// scheduled. This implementation broadcasts on every enqueue and on every
// leader rotation instead, per the specification's explicit requirement
// that implementations guarantee progress this way.
package lfpool

import (
	"sync"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/logger"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/metrics"
)

var log = logger.WithComponent("lfpool")

// Task is a unit of work executed exactly once by the pool. It receives the
// id of the worker executing it, so callers can observe leader rotation
// fairness (see the package's fairness test).
type Task func(workerID int)

// Pool is a fixed-size Leader-Follower worker pool.
type Pool struct {
	n int

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Task
	leader int
	stop   bool

	wg sync.WaitGroup
}

// New creates a pool of n workers. Call Start to begin processing.
func New(n int) *Pool {
	p := &Pool{n: n}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// AddTask enqueues f and wakes every waiting worker so the current leader
// (whoever it is) is guaranteed to observe the new task.
func (p *Pool) AddTask(f Task) {
	p.mu.Lock()
	p.queue = append(p.queue, f)
	p.mu.Unlock()
	p.cond.Broadcast()
}

// Start spawns the n workers and permits them to process tasks.
func (p *Pool) Start() {
	p.mu.Lock()
	p.stop = false
	p.mu.Unlock()

	log.Debug("starting LF pool with %d workers", p.n)
	for id := 0; id < p.n; id++ {
		p.wg.Add(1)
		go p.worker(id)
	}
}

// Stop signals shutdown and joins every worker. Workers exit only once the
// queue is empty, so in-flight tasks and tasks still queued at the time of
// Stop all run to completion before Stop returns.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.stop = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
	log.Debug("LF pool stopped")
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for {
			if p.stop && len(p.queue) == 0 {
				p.mu.Unlock()
				return
			}
			if len(p.queue) > 0 && p.leader == id {
				break
			}
			// Not our turn: either nothing to do yet, or another worker is
			// leader. Sleep on the condvar instead of spinning — Wait
			// releases the lock while parked and reacquires it before
			// returning, so this re-checks the guard above on every wake.
			p.cond.Wait()
		}

		task := p.queue[0]
		p.queue = p.queue[1:]
		p.leader = (p.leader + 1) % p.n
		p.mu.Unlock()

		metrics.Global().IncrementLeaderRotations()
		// Broadcast the rotation so the new leader notices immediately even
		// if it was already waiting when this worker took the task.
		p.cond.Broadcast()

		task(id)
		metrics.Global().IncrementLFTasksExecuted()
	}
}
