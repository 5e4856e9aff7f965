// File: internal/mst/registry.go
// Project: OS Final Project
// Description: Lazily-initialized, mutex-guarded strategy registry
// Version: 1.0.0

package mst

import (
	"sync"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/errkind"
)

// Strategy names accepted on the wire.
const (
	NamePrim    = "prim"
	NameKruskal = "kruskal"
)

// registry is the process-wide, lazily-initialized strategy table. It
// replaces the original ad-hoc lazy singleton with a once-initialized map
// behind a single entry point, avoiding teardown-order fragility.
type registry struct {
	mu         sync.Mutex
	strategies map[string]Strategy
}

var global = &registry{}

func (r *registry) init() {
	if r.strategies != nil {
		return
	}
	r.strategies = map[string]Strategy{
		NamePrim:    primStrategy{},
		NameKruskal: kruskalStrategy{},
	}
}

// Create resolves name to a shared Strategy instance. Strategies are
// stateless, so the same instance may be invoked concurrently by multiple
// callers. Returns an errkind.Domain error for unrecognized names.
func Create(name string) (Strategy, error) {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.init()
	s, ok := global.strategies[name]
	if !ok {
		return nil, errkind.Newf(errkind.Domain, "unknown MST strategy: %s", name)
	}
	return s, nil
}
