package oncelist

import (
	"testing"
)

// go test -bench=. -cpuprofile profile.out
// go tool pprof -http="localhost:8000" pprofbin ./profile.out

const benchBatch = 512

func benchmarkPush(b *testing.B, mode func() CacheMode[int]) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := NewWith(mode())
		for v := 0; v < benchBatch; v++ {
			l.Push(v)
		}
	}
}

func BenchmarkPushNoCache(b *testing.B) {
	benchmarkPush(b, NoCache[int])
}

func BenchmarkPushWithTail(b *testing.B) {
	benchmarkPush(b, WithTail[int])
}

func BenchmarkPushWithTailLen(b *testing.B) {
	benchmarkPush(b, WithTailLen[int])
}

func BenchmarkAppend(b *testing.B) {
	vals := make([]int, benchBatch)
	for i := range vals {
		vals[i] = i
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := New[int]()
		l.Append(vals...)
	}
}

func BenchmarkPushPopPooled(b *testing.B) {
	l := NewIn(PoolAllocator[int]())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Push(i)
		l.PopFront()
	}
}
