package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the first half of the spectrum.
func PowerSpectrum(data []float64) []float64 {
	coeffs := fft.FFTReal(data)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// LowPass keeps the DC term and the lowest keep frequencies of data and
// returns the real part of the inverse transform. keep <= 0 keeps only the
// mean.
func LowPass(data []float64, keep int) []float64 {
	n := len(data)
	if n == 0 {
		return nil
	}
	coeffs := fft.FFTReal(data)
	for k := 1; k < n; k++ {
		// Frequency k and n-k are conjugate pairs.
		if k > keep && n-k > keep {
			coeffs[k] = 0
		}
	}
	out := make([]float64, n)
	for i, c := range fft.IFFT(coeffs) {
		out[i] = real(c)
	}
	return out
}
