package model

import "sync"

// GenerationToPool returns a retired generation to the pool for reuse
func GenerationToPool(g *Generation, pool *GenerationPool) {
	if pool == nil || g == nil {
		return
	}

	pool.Put(g)
}

// GenerationPool recycles the map storage of retired generations
type GenerationPool struct {
	pool sync.Pool
}

func NewGenerationPool() *GenerationPool {
	return &GenerationPool{
		pool: sync.Pool{
			New: func() interface{} {
				return NewGeneration()
			},
		},
	}
}

// Get retrieves an empty generation from the pool
func (p *GenerationPool) Get() *Generation {
	return p.pool.Get().(*Generation)
}

// Put returns a generation to the pool, clearing its cells. The caller must
// not use g afterwards.
func (p *GenerationPool) Put(g *Generation) {
	g.clear()
	p.pool.Put(g)
}
