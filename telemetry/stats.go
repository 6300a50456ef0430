package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FrameSummary describes the distribution of frame times (or any other
// per-frame sample) over a window.
type FrameSummary struct {
	Count int     `csv:"count"`
	Mean  float64 `csv:"mean"`
	P50   float64 `csv:"p50"`
	P95   float64 `csv:"p95"`
	Max   float64 `csv:"max"`
}

// Summarize computes mean and quantiles over the samples. The input
// slice is sorted in place.
func Summarize(samples []float64) FrameSummary {
	if len(samples) == 0 {
		return FrameSummary{}
	}
	sort.Float64s(samples)
	return FrameSummary{
		Count: len(samples),
		Mean:  stat.Mean(samples, nil),
		P50:   stat.Quantile(0.5, stat.Empirical, samples, nil),
		P95:   stat.Quantile(0.95, stat.Empirical, samples, nil),
		Max:   samples[len(samples)-1],
	}
}

// FrameClock collects per-frame samples and summarizes them on demand.
type FrameClock struct {
	samples []float64
	max     int
}

// NewFrameClock creates a clock holding at most max samples; older
// samples are dropped.
func NewFrameClock(max int) *FrameClock {
	if max <= 0 {
		max = 1024
	}
	return &FrameClock{max: max}
}

// Record adds one sample in seconds.
func (f *FrameClock) Record(dt float64) {
	f.samples = append(f.samples, dt)
	if len(f.samples) > f.max {
		f.samples = f.samples[1:]
	}
}

// Summary summarizes and clears the collected samples.
func (f *FrameClock) Summary() FrameSummary {
	s := Summarize(f.samples)
	f.samples = f.samples[:0]
	return s
}
