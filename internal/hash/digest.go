// Package hash provides xxHash64 based fingerprints over element sequences.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest accumulates a fingerprint over a sequence of encoded elements.
//
// Every element is framed with its length so that ["ab", "c"] and ["a", "bc"]
// produce different sums. The element count is folded in by Sum64.
type Digest struct {
	h     *xxhash.Digest
	count uint64
	frame [8]byte
}

// New creates an empty Digest.
func New() *Digest {
	return &Digest{h: xxhash.New()}
}

// WriteElement adds one encoded element to the digest.
func (d *Digest) WriteElement(encoded []byte) {
	binary.LittleEndian.PutUint64(d.frame[:], uint64(len(encoded)))
	_, _ = d.h.Write(d.frame[:])
	_, _ = d.h.Write(encoded)
	d.count++
}

// Count returns the number of elements written so far.
func (d *Digest) Count() uint64 {
	return d.count
}

// Sum64 returns the fingerprint of everything written so far.
func (d *Digest) Sum64() uint64 {
	binary.LittleEndian.PutUint64(d.frame[:], d.count)

	return xxhash.Sum64(d.frame[:]) ^ d.h.Sum64()
}

// Reset clears the digest for reuse.
func (d *Digest) Reset() {
	d.h.Reset()
	d.count = 0
}
