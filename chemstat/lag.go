package chemstat

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DecorrelationLag returns tao, the first lag at which ac is strictly below threshold.
// threshold must be finite and positive. If ac never drops below it, a
// *NoDecorrelationFoundError is returned.
func DecorrelationLag(ac []float64, threshold float64) (int, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold <= 0 {
		return -1, &InvalidThresholdError{Threshold: threshold}
	}
	for k, v := range ac {
		if v < threshold {
			return k, nil
		}
	}
	min := math.NaN()
	if len(ac) > 0 {
		min = floats.Min(ac)
	}
	return -1, &NoDecorrelationFoundError{Threshold: threshold, Lags: len(ac), Min: min}
}

// Stride returns the subsampling stride for the lag tao. A tao of 0 (only possible
// with thresholds above 1) gives a stride of 1, i.e. all frames are kept.
func Stride(tao int) int {
	if tao < 1 {
		return 1
	}
	return tao
}

// Subsample returns every stride-th element of frames, starting with the first, i.e.
// ceil(len(frames)/stride) elements. A stride smaller than 1 is treated as 1.
// The returned slice is new, but the elements are not copied.
func Subsample[T any](frames []T, stride int) []T {
	if stride < 1 {
		stride = 1
	}
	ret := make([]T, 0, (len(frames)+stride-1)/stride)
	for i := 0; i < len(frames); i += stride {
		ret = append(ret, frames[i])
	}
	return ret
}

// Decorrelation contains the results of a decorrelation analysis.
type Decorrelation struct {
	ACF       []float64 //the autocorrelation function
	Threshold float64
	Tao       int
	Stride    int
}

// Estimate obtains the autocorrelation function of series, asks p for a threshold,
// and returns the resulting tao and stride. No partial result is returned on error.
func Estimate(series []float64, p ThresholdProvider) (*Decorrelation, error) {
	ac, err := Autocorrelation(series)
	if err != nil {
		return nil, errDecorate(err, "Estimate")
	}
	t, err := p.Threshold(ac)
	if err != nil {
		return nil, errDecorate(err, "Estimate")
	}
	tao, err := DecorrelationLag(ac, t)
	if err != nil {
		return nil, errDecorate(err, "Estimate")
	}
	return &Decorrelation{ACF: ac, Threshold: t, Tao: tao, Stride: Stride(tao)}, nil
}
