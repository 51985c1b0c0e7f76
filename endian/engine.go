// Package endian provides byte order engines and the element encoders used to
// fingerprint container contents.
//
// A fingerprint hashes the byte form of every element, so two containers only
// compare equal when their elements are encoded the same way. The encoders in
// this package give fixed-width, byte-order-explicit forms for numeric types
// and a raw form for strings:
//
//	enc := endian.IntEncoder[int](endian.GetLittleEndianEngine())
//	fp := deque.Fingerprint(d, enc)
//
// # Thread Safety
//
// All functions and returned encoders are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Integer is the set of integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// IntEncoder returns an encoder writing integers as 8 bytes in the engine's byte order.
// Negative values are written in two's complement.
func IntEncoder[T Integer](engine EndianEngine) func(dst []byte, v T) []byte {
	return func(dst []byte, v T) []byte {
		return engine.AppendUint64(dst, uint64(v))
	}
}

// FloatEncoder returns an encoder writing the IEEE 754 bits of a float widened to float64.
func FloatEncoder[T Float](engine EndianEngine) func(dst []byte, v T) []byte {
	return func(dst []byte, v T) []byte {
		return engine.AppendUint64(dst, math.Float64bits(float64(v)))
	}
}

// StringEncoder returns an encoder appending the raw bytes of a string.
func StringEncoder[T ~string]() func(dst []byte, v T) []byte {
	return func(dst []byte, v T) []byte {
		return append(dst, v...)
	}
}
