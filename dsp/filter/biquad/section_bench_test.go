package biquad

import (
	"fmt"
	"testing"
)

var benchCoeffs = Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.09}

func benchBuffer(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = float64(i%64) * 0.015625
	}

	return buf
}

func BenchmarkSectionProcessSample(b *testing.B) {
	s := NewSection(benchCoeffs)

	x := 1.0
	for b.Loop() {
		x = s.ProcessSample(x)
	}

	_ = x
}

func BenchmarkSectionProcessBlock(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("N=%d", size), func(b *testing.B) {
			s := NewSection(benchCoeffs)
			buf := benchBuffer(size)

			b.SetBytes(int64(size * 8))

			for b.Loop() {
				s.ProcessBlock(buf)
			}
		})
	}
}

func BenchmarkSectionProcessBlockTo(b *testing.B) {
	s := NewSection(benchCoeffs)
	src := benchBuffer(1024)
	dst := make([]float64, len(src))

	b.SetBytes(int64(len(src) * 8))

	for b.Loop() {
		s.ProcessBlockTo(dst, src)
	}
}

func BenchmarkChainProcessBlock(b *testing.B) {
	for _, n := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("sections=%d", n), func(b *testing.B) {
			coeffs := make([]Coefficients, n)
			for i := range coeffs {
				coeffs[i] = benchCoeffs
			}

			c := NewChain(coeffs)
			buf := benchBuffer(1024)

			b.SetBytes(1024 * 8)

			for b.Loop() {
				c.ProcessBlock(buf)
			}
		})
	}
}
