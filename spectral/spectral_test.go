// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"math"
	"testing"
)

func sine(freq, fs float64, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / fs)
	}
	return x
}

func TestWelchSinePeak(t *testing.T) {
	fs := 1000.0
	x := sine(40, fs, 4000)
	freqs, psd := Welch(x, fs, 1000)
	if freqs == nil {
		t.Fatalf("nil spectrum\n")
	}
	if res := freqs[1] - freqs[0]; math.Abs(res-1.0) > 1e-9 {
		t.Errorf("frequency resolution: %v, want 1 Hz\n", res)
	}
	pk := DominantFreq(freqs, psd, 1, 500)
	if math.Abs(pk-40) > 1.5 {
		t.Errorf("sine peak at %v Hz, want 40\n", pk)
	}
	// peak power dominates a frequency far from the peak
	var pPk, pFar float64
	for i, f := range freqs {
		if math.Abs(f-40) < 0.5 {
			pPk = psd[i]
		}
		if math.Abs(f-200) < 0.5 {
			pFar = psd[i]
		}
	}
	if pPk < 100*pFar {
		t.Errorf("peak power %v not dominant over %v\n", pPk, pFar)
	}
}

func TestWelchDCRemoved(t *testing.T) {
	fs := 1000.0
	x := sine(10, fs, 2000)
	for i := range x {
		x[i] += 50 // large offset must not leak into the spectrum
	}
	freqs, psd := Welch(x, fs, 1000)
	if psd[0] > 1e-6 {
		t.Errorf("DC power after demeaning: %v\n", psd[0])
	}
	if pk := DominantFreq(freqs, psd, 1, 500); math.Abs(pk-10) > 1.5 {
		t.Errorf("peak at %v Hz, want 10\n", pk)
	}
}

func TestWelchShort(t *testing.T) {
	if f, p := Welch([]float64{1}, 1000, 256); f != nil || p != nil {
		t.Errorf("spectrum from one sample\n")
	}
	// nperseg longer than the signal is clipped, not an error
	x := sine(5, 100, 50)
	if f, _ := Welch(x, 100, 256); f == nil {
		t.Errorf("no spectrum with clipped nperseg\n")
	}
}

func TestSpectrum(t *testing.T) {
	// 6 Hz oscillation at the network rate-trace sampling of dt = 0.05 ms
	dtMs := 0.05
	fs := 1000.0 / dtMs
	x := sine(6, fs, 40000) // 2 s
	freqs, psd, ok := Spectrum(x, dtMs)
	if !ok {
		t.Fatalf("Spectrum rejected valid trace\n")
	}
	for _, f := range freqs {
		if f > MaxFreq {
			t.Fatalf("frequency %v above cutoff\n", f)
		}
	}
	if pk := DominantFreq(freqs, psd, ThetaLo, ThetaHi); math.Abs(pk-6) > 1 {
		t.Errorf("theta peak at %v Hz, want 6\n", pk)
	}

	if _, _, ok := Spectrum(make([]float64, MinSamples-1), dtMs); ok {
		t.Errorf("Spectrum accepted a trace below MinSamples\n")
	}
}

func TestDominantFreq(t *testing.T) {
	freqs := []float64{0, 10, 20, 30, 40}
	psd := []float64{100, 1, 5, 2, 3}
	if pk := DominantFreq(freqs, psd, 5, 45); pk != 20 {
		t.Errorf("dominant: %v, want 20\n", pk)
	}
	if pk := DominantFreq(freqs, psd, 50, 60); pk != 0 {
		t.Errorf("empty band: %v, want 0\n", pk)
	}
}

func TestSmooth(t *testing.T) {
	// constant signal is unchanged
	c := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	sm := Smooth(c, 4)
	for i, v := range sm {
		if math.Abs(v-3) > 1e-12 {
			t.Errorf("constant smoothed at %v: %v\n", i, v)
		}
	}
	// smoothing reduces variance of an alternating signal
	alt := make([]float64, 100)
	for i := range alt {
		alt[i] = float64(i%2)*2 - 1
	}
	sm = Smooth(alt, 10)
	for i := 10; i < 90; i++ {
		if math.Abs(sm[i]) > 0.3 {
			t.Errorf("alternating not damped at %v: %v\n", i, sm[i])
		}
	}
	// degenerate windows pass through
	if got := Smooth(alt, 1); &got[0] != &alt[0] {
		t.Errorf("win=1 did not pass through\n")
	}
	if got := Smooth(nil, 5); got != nil {
		t.Errorf("nil input: %v\n", got)
	}
}

func TestSmoothDefault(t *testing.T) {
	x := make([]float64, 1000)
	for i := range x {
		x[i] = float64(i % 7)
	}
	sm := SmoothDefault(x) // window capped at 50
	if len(sm) != len(x) {
		t.Errorf("length changed: %v\n", len(sm))
	}
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	for i := 100; i < 900; i++ {
		if math.Abs(sm[i]-mean) > 0.5 {
			t.Errorf("interior not near mean at %v: %v\n", i, sm[i])
		}
	}
}

func TestF64(t *testing.T) {
	y := F64([]float32{1.5, -2})
	if len(y) != 2 || y[0] != 1.5 || y[1] != -2 {
		t.Errorf("F64: %v\n", y)
	}
}
