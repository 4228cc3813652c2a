package encoding

import "github.com/zeusync/voxkit/pkg/generic"

const defaultStreamCapacity = 256

// StreamPool recycles BinaryStreams for encoders that produce many short frames.
type StreamPool struct {
	pool *generic.Pool[*BinaryStream]
}

// NewStreamPool creates a pool whose streams start with capacity bytes of storage,
// pre-filled with warm streams.
func NewStreamPool(capacity, warm int) *StreamPool {
	if capacity <= 0 {
		capacity = defaultStreamCapacity
	}
	return &StreamPool{
		pool: generic.NewHotPool(func() *BinaryStream {
			return NewBinaryStream(make([]byte, 0, capacity))
		}, warm),
	}
}

// Get returns an empty stream.
func (p *StreamPool) Get() *BinaryStream {
	s := p.pool.Get()
	s.Reset()
	return s
}

// Put returns s to the pool. Slices previously obtained from s must no longer be used.
func (p *StreamPool) Put(s *BinaryStream) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
