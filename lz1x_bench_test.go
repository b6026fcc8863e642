package lz1x

import (
	"bytes"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func BenchmarkDecompress(b *testing.B) {
	for _, v := range []Variant{VariantLZ10, VariantLZ11} {
		enc := compressForTest(v, benchInput, WindowSize)
		b.Run(v.String(), func(b *testing.B) {
			b.SetBytes(int64(len(benchInput)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Decompress(enc)
			}
		})
	}
}

func BenchmarkDecompressFromReader(b *testing.B) {
	enc := compressForTest(VariantLZ11, benchInput, WindowSize)
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = DecompressFromReader(bytes.NewReader(enc))
	}
}
