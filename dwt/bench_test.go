package dwt_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wbe/dwt"
	"github.com/katalvlaran/wbe/filter"
	"github.com/katalvlaran/wbe/tensor"
)

// benchmarkLevels runs a forward+inverse round trip on a tensor of the given
// shape. It resets the timer before the loop and fails on unexpected errors.
func benchmarkLevels(b *testing.B, level int, opts []dwt.Option, shape ...int) {
	bank, err := filter.Daubechies(3)
	if err != nil {
		b.Fatalf("Daubechies: %v", err)
	}
	d, err := tensor.New(shape...)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := range d.Data() {
		d.Data()[i] = rng.NormFloat64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := dwt.ForwardLevels(d, bank, level, opts...); err != nil {
			b.Fatalf("ForwardLevels: %v", err)
		}
		if err := dwt.InverseLevels(d, bank, level, opts...); err != nil {
			b.Fatalf("InverseLevels: %v", err)
		}
	}
}

// BenchmarkLevels_1D benchmarks a 3-level round trip on 4096 samples.
func BenchmarkLevels_1D(b *testing.B) {
	benchmarkLevels(b, 3, nil, 4096)
}

// BenchmarkLevels_2D benchmarks a 2-level round trip on a 256×256 matrix.
func BenchmarkLevels_2D(b *testing.B) {
	benchmarkLevels(b, 2, nil, 256, 256)
}

// BenchmarkLevels_2DWorkers is BenchmarkLevels_2D with 4 sweep workers.
func BenchmarkLevels_2DWorkers(b *testing.B) {
	benchmarkLevels(b, 2, []dwt.Option{dwt.WithWorkers(4)}, 256, 256)
}

// BenchmarkLevels_3D benchmarks a 2-level round trip on a 32×32×32 cube.
func BenchmarkLevels_3D(b *testing.B) {
	benchmarkLevels(b, 2, nil, 32, 32, 32)
}
