package main

import (
	"runtime"
	"sync"
)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Converter
	Release(Converter)
	Size() int
}

// ServicePool manages a bounded set of Converter instances so a batch run
// never spawns more concurrent pandoc subprocesses than the pool size.
// Services are created lazily on first acquire.
type ServicePool struct {
	size       int
	newService func() Converter
	sem        chan Converter
	mu         sync.Mutex
	created    int
}

// NewServicePool creates a pool with capacity for n Converter instances,
// built on demand by newService.
func NewServicePool(n int, newService func() Converter) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size:       n,
		newService: newService,
		sem:        make(chan Converter, n),
	}
}

// Compile-time check that ServicePool implements Pool.
var _ Pool = (*ServicePool)(nil)

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use.
func (p *ServicePool) Acquire() Converter {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return p.newService()
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc Converter) {
	p.sem <- svc
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// resolvePoolSize determines the pool size.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
