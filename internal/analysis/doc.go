// Package analysis examines recorded run series in the frequency
// domain.
//
//   - [FFT]: radix-2 discrete Fourier transform
//   - [PowerSpectrum]: one-sided amplitude spectrum of a series
//   - [DominantFrequency]: strongest frequency in Hz
//
// The intended input is a per-frame metric series from an experiment
// run, such as total kinetic energy, where a sharp dominant frequency
// reveals a sloshing or bouncing mode of the settled pile.
package analysis
