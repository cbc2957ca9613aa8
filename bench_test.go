package md5

import (
	"bytes"
	"fmt"
	"testing"
)

func BenchmarkIncremental(b *testing.B) {
	run := func(b *testing.B, size int) {
		h := New()
		out := make([]byte, 0, Size)
		buf := make([]byte, size)
		b.ReportAllocs()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			h.Write(buf)
			out = h.Sum(out[:0])
			h.Reset()
		}
	}

	for _, n := range []int{
		1, 4, 8, 12, 16,
	} {
		b.Run(fmt.Sprintf("%04d_block", n), func(b *testing.B) { run(b, n*64) })
	}

	for _, n := range []int{
		1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024,
	} {
		b.Run(fmt.Sprintf("%04d_kib", n), func(b *testing.B) { run(b, n*1024) })
		b.Run(fmt.Sprintf("%04d_kib+55", n), func(b *testing.B) { run(b, n*1024+55) })
	}
}

func BenchmarkSumReader(b *testing.B) {
	sizes := []int64{0, 16, 55, 64, 128, 1024, 8 * 1024, 64 * 1024}

	for _, size := range sizes {
		input := make([]byte, size)

		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(size)

			for i := 0; i < b.N; i++ {
				_, _, _ = SumReader(bytes.NewReader(input))
			}
		})
	}
}
