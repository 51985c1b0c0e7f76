package deque

import (
	"fmt"
	"testing"
)

func BenchmarkPushBack(b *testing.B) {
	for _, cs := range []int{8, 32, 256} {
		b.Run(fmt.Sprintf("chunk_%d", cs), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				d, _ := New(WithChunkSize[int](cs))
				for i := range 4096 {
					_ = d.PushBack(i)
				}
			}
		})
	}
}

func BenchmarkPushPop_Recycling(b *testing.B) {
	for _, recycle := range []bool{false, true} {
		b.Run(fmt.Sprintf("recycle_%t", recycle), func(b *testing.B) {
			opts := []Option[int]{WithChunkSize[int](64)}
			if recycle {
				opts = append(opts, WithChunkRecycling[int]())
			}
			d, _ := New(opts...)
			b.ReportAllocs()
			for b.Loop() {
				for i := range 1024 {
					_ = d.PushBack(i)
				}
				for range 1024 {
					_, _ = d.PopFront()
				}
			}
		})
	}
}

func BenchmarkIndex(b *testing.B) {
	d, _ := NewWithCount[int](1 << 16)
	n := d.Len()
	sum := 0
	for i := 0; b.Loop(); i++ {
		sum += *d.Index(i % n)
	}
	_ = sum
}

func BenchmarkIterate(b *testing.B) {
	d, _ := NewWithCount[int](1 << 14)
	b.Run("values", func(b *testing.B) {
		for b.Loop() {
			sum := 0
			for v := range d.Values() {
				sum += v
			}
			_ = sum
		}
	})
	b.Run("iterator", func(b *testing.B) {
		for b.Loop() {
			sum := 0
			for it, end := d.CBegin(), d.CEnd(); it.Less(end); it = it.Next() {
				sum += it.Value()
			}
			_ = sum
		}
	})
}
