package regression

import (
	"fmt"
	"math"
	"testing"
)

func generateBenchmarkData(size int) ([]float64, []float64) {
	x := make([]float64, size)
	y := make([]float64, size)
	for i := range size {
		x[i] = float64(i + 1)
		y[i] = 2.5*math.Pow(x[i], 0.8) + float64(i%7)*0.01
	}

	return x, y
}

func BenchmarkFit(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, kind := range Kinds() {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/Points_%d", kind, size), func(b *testing.B) {
				x, y := generateBenchmarkData(size)
				b.ReportAllocs()

				for b.Loop() {
					if _, err := Fit(kind, x, y); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkFitBest(b *testing.B) {
	x, y := generateBenchmarkData(1000)
	b.ReportAllocs()

	for b.Loop() {
		if _, err := FitBest(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
