package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of data via recursive
// radix-2 decimation. len(data) must be a power of two.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the one-sided amplitude spectrum of a recorded
// series. The series is de-meaned and truncated to the largest power
// of two before transforming, so any frame count works.
func PowerSpectrum(data []float64) []float64 {
	n := prevPow2(len(data))
	if n < 2 {
		return []float64{}
	}

	mean := 0.0
	for _, v := range data[:n] {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i := 0; i < n; i++ {
		centered[i] = data[i] - mean
	}

	fft := FFT(centered)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// DominantFrequency returns the frequency in Hz with the most power in
// a series sampled every dt seconds, or 0 when the series is too short
// to say.
func DominantFrequency(data []float64, dt float64) float64 {
	if dt <= 0 {
		return 0
	}

	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}

	n := prevPow2(len(data))
	return float64(best) / (float64(n) * dt)
}

func prevPow2(n int) int {
	if n < 1 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}
