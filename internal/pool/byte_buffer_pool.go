package pool

import "sync"

// Scratch buffer sizing for element encoding during fingerprinting.
const (
	ScratchDefaultSize  = 256       // initial capacity of a pooled scratch buffer
	ScratchMaxThreshold = 64 * 1024 // buffers grown past this are not pooled
)

// ByteBuffer is a reusable byte slice holder.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// ByteBufferPool pools ByteBuffers and drops the ones that grew too large.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers have defaultSize capacity.
// A maxThreshold of zero disables the size check on Put.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// Put returns bb to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var scratchPool = NewByteBufferPool(ScratchDefaultSize, ScratchMaxThreshold)

// GetScratch retrieves a scratch buffer from the default pool.
func GetScratch() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratch returns a scratch buffer to the default pool.
func PutScratch(bb *ByteBuffer) {
	scratchPool.Put(bb)
}
