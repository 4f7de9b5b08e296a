package model

import "sync"

// CellsToPool returns a candidate buffer to the pool for reuse
func CellsToPool(buf *[]Cell, pool *CellPool) {
	if pool == nil || buf == nil {
		return
	}

	pool.Put(buf)
}

// CellPool recycles candidate buffers between generations
type CellPool struct {
	pool sync.Pool
}

func NewCellPool() *CellPool {
	return &CellPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]Cell, 0, 64)
				return &buf
			},
		},
	}
}

// Get retrieves an empty buffer able to hold at least capacity cells
func (p *CellPool) Get(capacity int) *[]Cell {
	buf := p.pool.Get().(*[]Cell)
	if cap(*buf) < capacity {
		*buf = make([]Cell, 0, capacity)
	}
	*buf = (*buf)[:0]
	return buf
}

// Put returns a buffer to the pool, truncating it first
func (p *CellPool) Put(buf *[]Cell) {
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
