package fasttrig

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-trig/internal/testutil"
)

var (
	sink64 float64
	sink32 float32
)

var benchAngles = testutil.DeterministicAngles(1, -2*math.Pi, 2*math.Pi, 1024)

func benchScalar(b *testing.B, f func(float64) float64) {
	b.Helper()
	b.ReportAllocs()

	acc := 0.0
	for i := 0; i < b.N; i++ {
		acc += f(benchAngles[i&1023])
	}

	sink64 = acc
}

func BenchmarkFastSin(b *testing.B) { benchScalar(b, FastSin[float64]) }
func BenchmarkMathSin(b *testing.B) { benchScalar(b, math.Sin) }
func BenchmarkFastCos(b *testing.B) { benchScalar(b, FastCos[float64]) }
func BenchmarkMathCos(b *testing.B) { benchScalar(b, math.Cos) }
func BenchmarkFastTan(b *testing.B) { benchScalar(b, FastTan[float64]) }
func BenchmarkMathTan(b *testing.B) { benchScalar(b, math.Tan) }

func BenchmarkFastAtan(b *testing.B) { benchScalar(b, FastAtan[float64]) }
func BenchmarkMathAtan(b *testing.B) { benchScalar(b, math.Atan) }

func BenchmarkFastAsin(b *testing.B) {
	benchScalar(b, func(x float64) float64 { return FastAsin(x * (1 / (2 * math.Pi))) })
}

func BenchmarkMathAsin(b *testing.B) {
	benchScalar(b, func(x float64) float64 { return math.Asin(x * (1 / (2 * math.Pi))) })
}

func BenchmarkFastAtan2(b *testing.B) {
	b.ReportAllocs()

	acc := 0.0
	for i := 0; i < b.N; i++ {
		acc += FastAtan2(benchAngles[i&1023], benchAngles[(i+7)&1023])
	}

	sink64 = acc
}

func BenchmarkMathAtan2(b *testing.B) {
	b.ReportAllocs()

	acc := 0.0
	for i := 0; i < b.N; i++ {
		acc += math.Atan2(benchAngles[i&1023], benchAngles[(i+7)&1023])
	}

	sink64 = acc
}

func BenchmarkFastSinFloat32(b *testing.B) {
	angles := testutil.ToFloat32(benchAngles)
	b.ReportAllocs()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += FastSin(angles[i&1023])
	}

	sink32 = acc
}

func BenchmarkSinCosBlock(b *testing.B) {
	sin := make([]float64, len(benchAngles))
	cos := make([]float64, len(benchAngles))

	b.SetBytes(int64(len(benchAngles) * 8 * 3))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		SinCosBlock(sin, cos, benchAngles)
	}
}
