// Package analysis inspects where assembly happens along the channel.
//
// Assembled particles never move again, so their x coordinates record the
// position at which each one transformed. Binning them gives the nucleation
// profile:
//
//   - [SpatialProfile]: per-bin totals and assembled counts along x
//   - [LowPass]: FFT smoothing of a binned profile
//   - [PowerSpectrum]: magnitude spectrum of a profile
//   - [EstimatePeak]: x of the smoothed nucleation maximum
//
// With a positive alpha the estimated peak should sit near x_p:
//
//	x, ok := analysis.EstimatePeak(model.Snapshot(), params.Length, 64, 4)
package analysis
