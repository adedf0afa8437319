package spectrum

import "testing"

func BenchmarkCompute(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			s, err := NewState(testCase.size, 48000)
			if err != nil {
				b.Fatal(err)
			}

			for i := range s.Real() {
				s.Real()[i] = float64(i) / 10.0
				s.Imag()[i] = float64(testCase.size-i) / 10.0
			}

			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				_ = s.Compute()
			}
		})
	}
}

func BenchmarkMagnitudeFromParts(b *testing.B) {
	const size = 4096

	re := make([]float64, size)
	im := make([]float64, size)
	dst := make([]float64, size)
	for i := range re {
		re[i] = float64(i) / 10.0
		im[i] = float64(size-i) / 10.0
	}

	b.SetBytes(size * 16)
	b.ResetTimer()

	for range b.N {
		MagnitudeFromParts(dst, re, im)
	}
}
