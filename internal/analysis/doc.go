// Package analysis provides frequency-domain tools for simulated outputs.
//
//   - [MagnitudeSpectrum]: one-sided magnitude spectrum of a real signal
//   - [DominantFrequency]: angular frequency (rad/sample) of the strongest non-DC bin
//
// The frequencies of a generated system's modes are angles per step, so the
// dominant output frequency of an impulse response can be compared directly
// against [dynamo.Mode] frequencies:
//
//	y := result.Channel(0)
//	omega := analysis.DominantFrequency(y)
package analysis
