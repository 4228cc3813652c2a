// Package generic holds small type-safe wrappers over standard library containers.
package generic

import "sync"

// Pool is a typed sync.Pool.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool creates a pool that calls generate when empty.
func NewPool[T any](generate func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return generate()
			},
		},
	}
}

// NewHotPool creates a pool pre-filled with warm values.
func NewHotPool[T any](generate func() T, warm int) *Pool[T] {
	p := NewPool[T](generate)
	for range warm {
		p.pool.Put(generate())
	}
	return p
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(value T) {
	p.pool.Put(value)
}
