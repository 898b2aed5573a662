package chemstat

import (
	"fmt"
	"math"

	"github.com/rmera/decorr"
	"gonum.org/v1/gonum/floats"
)

// FrameFunc obtains a scalar from a trajectory frame.
type FrameFunc func(f *decorr.Frame) float64

// EnergyFunc returns the energy of the frame.
func EnergyFunc(f *decorr.Frame) float64 {
	return f.Energy
}

// MaxForceFunc returns the largest atomic force in the frame, or NaN
// if the frame has no forces.
func MaxForceFunc(f *decorr.Frame) float64 {
	m, err := f.MaxForce()
	if err != nil {
		return math.NaN()
	}
	return m
}

// mapfunc reads t to the end and appends to each c[j] the value of fs[j] for every frame.
func mapfunc(t decorr.FrameReader, c [][]float64, fs ...FrameFunc) ([][]float64, error) {
	frame := new(decorr.Frame)
	for err := t.Next(frame); ; err = t.Next(frame) {
		if err != nil {
			if decorr.IsLastFrame(err) {
				break
			}
			return nil, errDecorate(err, "mapfunc")
		}
		for j, f := range fs {
			c[j] = append(c[j], f(frame))
		}
	}
	return c, nil
}

// Series reads t to the end and returns the value of f for each frame.
func Series(t decorr.FrameReader, f FrameFunc) ([]float64, error) {
	c, err := mapfunc(t, make([][]float64, 1), f)
	if err != nil {
		return nil, errDecorate(err, "Series")
	}
	return c[0], nil
}

// EnergySeries reads t to the end and returns the energy of each frame.
func EnergySeries(t decorr.FrameReader) ([]float64, error) {
	return Series(t, EnergyFunc)
}

// FrameCorrelation reads t to the end and returns the cross-correlation function
// (see CrossCorrelation) of the values produced by f1 and f2 on each frame.
// If f1 and f2 are the same function, you obtain the autocorrelation function with
// the normalization of CrossCorrelation, which differs from that of Autocorrelation.
func FrameCorrelation(t decorr.FrameReader, f1, f2 FrameFunc) ([]float64, error) {
	c, err := mapfunc(t, make([][]float64, 2), f1, f2)
	if err != nil {
		return nil, errDecorate(err, "FrameCorrelation")
	}
	ret, err := CrossCorrelation(c[0], c[1])
	if err != nil {
		return nil, errDecorate(err, "FrameCorrelation")
	}
	return ret, nil
}

// CrossCorrelation returns, for the lags 0 to len(c1)/2-1,
//
//	sum_{i<N-k} (c1[i]-m1)*(c2[i+k]-m2) / (N*s1*s2)
//
// where m and s are the mean and population standard deviation of each series.
// The denominator doesn't depend on the lag, so values at long lags are damped.
// c1 and c2 must have the same length, and the same requirements as for
// Autocorrelation apply to each of them.
func CrossCorrelation(c1, c2 []float64) ([]float64, error) {
	if len(c1) != len(c2) {
		return nil, fmt.Errorf("chemstat: cross-correlation of series with different lengths %d, %d", len(c1), len(c2))
	}
	for _, c := range [][]float64{c1, c2} {
		if err := checkSeries(c); err != nil {
			return nil, errDecorate(err, "CrossCorrelation")
		}
	}
	n := float64(len(c1))
	d1 := deviations(c1)
	d2 := deviations(c2)
	s1 := math.Sqrt(floats.Dot(d1, d1) / n)
	s2 := math.Sqrt(floats.Dot(d2, d2) / n)
	ret := lagProducts(d1, d2, len(c1)/2)
	floats.Scale(1/(n*s1*s2), ret)
	return ret, nil
}

// errDecorate decorates err with the caller's name if err implements decorr.Error.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(decorr.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
