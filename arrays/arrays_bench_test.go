package arrays

import (
	"fmt"
	"testing"
)

var benchSizes = []int{10, 1000, 100000}

func benchName(size int) string {
	if size >= 1000 {
		return fmt.Sprintf("%dK", size/1000)
	}
	return fmt.Sprintf("%d", size)
}

func benchSlice(size int) []int {
	s := make([]int, size)
	for i := range s {
		s[i] = i
	}
	return s
}

func BenchmarkAdd(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s := benchSlice(size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Add(s, i)
			}
		})
	}
}

func BenchmarkInsertAt(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s := benchSlice(size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = InsertAt(s, size/2, i)
			}
		})
	}
}

func BenchmarkRemoveAt(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s := benchSlice(size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = RemoveAt(s, size/2)
			}
		})
	}
}

func BenchmarkRemoveAll(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s := benchSlice(size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = RemoveAll(s, isEven)
			}
		})
	}
}

func BenchmarkConcat(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			first, second := benchSlice(size), benchSlice(size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Concat(first, second)
			}
		})
	}
}
