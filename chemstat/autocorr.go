package chemstat

import (
	"math"
	"math/cmplx"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinSeriesLen is the shortest series for which an autocorrelation can be obtained.
const MinSeriesLen = 2

//Normalization: for each lag k, both the numerator and the denominator run over
//the same N-k points,
//
//	ac[k] = sum_{i<N-k} d[i]*d[i+k] / sum_{i<N-k} d[i]^2, with d[i] = x[i]-mean(x)
//
//so ac[0] is always 1. Changing this changes every tao obtained with the library,
//see TestAutocorrelationPinned.

// Autocorrelation returns the normalized autocorrelation function of series, for the
// lags 0 to len(series)/2-1. The products for all lags are obtained at once with
// a zero-padded FFT, so the cost is O(N log N).
// The series must have at least 2 points, all finite, and must not be constant.
func Autocorrelation(series []float64) ([]float64, error) {
	d, den, err := prepare(series)
	if err != nil {
		return nil, err
	}
	num := lagProducts(d, d, len(den))
	for k, v := range den {
		num[k] /= v
	}
	return num, nil
}

// DirectAutocorrelation returns the same as Autocorrelation, but obtains the products
// for each lag by direct summation, which costs O(N^2). Lags are computed concurrently.
// It is meant as a reference for testing and for short series.
func DirectAutocorrelation(series []float64) ([]float64, error) {
	d, den, err := prepare(series)
	if err != nil {
		return nil, err
	}
	n := len(d)
	lags := len(den)
	ret := make([]float64, lags)
	workers := runtime.GOMAXPROCS(0)
	if workers > lags {
		workers = lags
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		//each goroutine only writes its own lags
		go func(first int) {
			defer wg.Done()
			for k := first; k < lags; k += workers {
				ret[k] = floats.Dot(d[:n-k], d[k:]) / den[k]
			}
		}(w)
	}
	wg.Wait()
	return ret, nil
}

// checkSeries returns an error if series is too short or contains non-finite values.
func checkSeries(series []float64) error {
	if len(series) < MinSeriesLen {
		return &DegenerateSeriesError{N: len(series), Lag: -1}
	}
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &NonFiniteInputError{Index: i, Value: v}
		}
	}
	if floats.Max(series) == floats.Min(series) {
		return &DegenerateSeriesError{N: len(series), Lag: -1}
	}
	return nil
}

// deviations returns series minus its mean.
func deviations(series []float64) []float64 {
	d := make([]float64, len(series))
	copy(d, series)
	floats.AddConst(-stat.Mean(series, nil), d)
	return d
}

// prepare checks the series and returns its deviations from the mean and the
// denominator for each lag, sum_{i<N-k} d[i]^2, from a cumulative sum.
func prepare(series []float64) ([]float64, []float64, error) {
	if err := checkSeries(series); err != nil {
		return nil, nil, err
	}
	d := deviations(series)
	n := len(d)
	cum := make([]float64, n+1)
	for i, v := range d {
		cum[i+1] = cum[i] + v*v
	}
	den := make([]float64, n/2)
	for k := range den {
		den[k] = cum[n-k]
		if den[k] == 0 {
			return nil, nil, &DegenerateSeriesError{N: n, Lag: k}
		}
	}
	return d, den, nil
}

// lagProducts returns, for k in [0, lags), sum_{i<N-k} a[i]*b[i+k], using
// FFTs padded to avoid the circular wrap-around. a and b must have the same length.
func lagProducts(a, b []float64, lags int) []float64 {
	if len(a) != len(b) {
		panic("chemstat: lagProducts: slices of different lengths")
	}
	m := nextPow2(2 * len(a))
	fft := fourier.NewFFT(m)
	pad := make([]float64, m)
	copy(pad, a)
	ca := fft.Coefficients(nil, pad)
	cb := ca
	if !sameSlice(a, b) {
		for i := range pad {
			pad[i] = 0
		}
		copy(pad, b)
		cb = fft.Coefficients(nil, pad)
	}
	prod := make([]complex128, len(ca))
	for i, v := range ca {
		prod[i] = cmplx.Conj(v) * cb[i]
	}
	seq := fft.Sequence(nil, prod)
	//gonum doesn't normalize the backward transform
	ret := make([]float64, lags)
	floats.ScaleTo(ret, 1/float64(m), seq[:lags])
	return ret
}

func sameSlice(a, b []float64) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
