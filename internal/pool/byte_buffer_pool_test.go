package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 64, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, "some data"...)
	capBefore := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B), "reset should keep capacity")
}

func TestByteBufferPool_GetReturnsEmptyBuffer(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	bb := p.Get()
	bb.B = append(bb.B, "leftover"...)
	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
	assert.Equal(t, 0, bb2.Len(), "pooled buffer must come back empty")
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 128)

	bb := p.Get()
	bb.B = append(bb.B, make([]byte, 1024)...)
	require.Greater(t, cap(bb.B), 128)

	// Oversized buffers are dropped, so no pooled buffer exceeds the threshold.
	p.Put(bb)
	bb2 := p.Get()
	assert.LessOrEqual(t, cap(bb2.B), 128)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(16, 0)

	require.NotPanics(t, func() { p.Put(nil) })
}

func TestScratch(t *testing.T) {
	bb := GetScratch()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 0)
	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, 1, 2, 3)
	PutScratch(bb)
	PutScratch(nil)
}
