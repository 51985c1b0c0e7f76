package deque

import (
	"iter"

	"github.com/arloliu/segdeque/internal/hash"
	"github.com/arloliu/segdeque/internal/pool"
)

// Encoder appends a byte representation of v to dst and returns the result.
type Encoder[T any] func(dst []byte, v T) []byte

// Fingerprint returns an xxHash64 fingerprint of the elements of d in order.
//
// Two containers holding equal encodings in the same order have the same
// fingerprint, which makes it a cheap way to compare contents against another
// sequence, e.g. a reference model in tests.
func Fingerprint[T any](d *Deque[T], enc Encoder[T]) uint64 {
	return FingerprintSeq(d.Values(), enc)
}

// FingerprintSeq returns the fingerprint of an arbitrary sequence, compatible
// with Fingerprint.
func FingerprintSeq[T any](seq iter.Seq[T], enc Encoder[T]) uint64 {
	buf := pool.GetScratch()
	defer pool.PutScratch(buf)

	digest := hash.New()
	for v := range seq {
		buf.B = enc(buf.B[:0], v)
		digest.WriteElement(buf.B)
	}

	return digest.Sum64()
}
