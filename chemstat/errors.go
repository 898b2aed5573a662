package chemstat

import "fmt"

//All the errors here implement decorr.Error. Use errors.As to tell them apart.

// DegenerateSeriesError is returned when no autocorrelation can be obtained from a
// series: it has less than 2 points, or zero variance over the points used for some lag.
type DegenerateSeriesError struct {
	N    int //length of the series
	Lag  int //lag with zero variance, or -1 if the series is too short or constant.
	deco []string
}

func (E *DegenerateSeriesError) Error() string {
	if E.N < MinSeriesLen {
		return fmt.Sprintf("chemstat: series of %d points, at least %d needed", E.N, MinSeriesLen)
	}
	if E.Lag < 0 {
		return fmt.Sprintf("chemstat: constant series of %d points, autocorrelation undefined", E.N)
	}
	return fmt.Sprintf("chemstat: zero variance for lag %d in a series of %d points", E.Lag, E.N)
}

// Decorate adds deco to the decoration slice and returns it.
func (E *DegenerateSeriesError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (E *DegenerateSeriesError) Critical() bool { return true }

// NonFiniteInputError is returned when the series contains a NaN or infinite value,
// usually a sign of a corrupted simulation output.
type NonFiniteInputError struct {
	Index int
	Value float64
	deco  []string
}

func (E *NonFiniteInputError) Error() string {
	return fmt.Sprintf("chemstat: non-finite value %v at position %d of the series", E.Value, E.Index)
}

// Decorate adds deco to the decoration slice and returns it.
func (E *NonFiniteInputError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (E *NonFiniteInputError) Critical() bool { return true }

// NoDecorrelationFoundError is returned when the autocorrelation never drops below
// the threshold. It is not critical: the caller can try a larger threshold or
// a longer series.
type NoDecorrelationFoundError struct {
	Threshold float64
	Lags      int     //number of lags examined
	Min       float64 //smallest autocorrelation value found
	deco      []string
}

func (E *NoDecorrelationFoundError) Error() string {
	return fmt.Sprintf("chemstat: autocorrelation doesn't drop below %v in %d lags (minimum %v)", E.Threshold, E.Lags, E.Min)
}

// Decorate adds deco to the decoration slice and returns it.
func (E *NoDecorrelationFoundError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (E *NoDecorrelationFoundError) Critical() bool { return false }

// InvalidThresholdError is returned for thresholds that are not finite and positive.
type InvalidThresholdError struct {
	Threshold float64
	deco      []string
}

func (E *InvalidThresholdError) Error() string {
	return fmt.Sprintf("chemstat: invalid threshold %v, it must be finite and positive", E.Threshold)
}

// Decorate adds deco to the decoration slice and returns it.
func (E *InvalidThresholdError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (E *InvalidThresholdError) Critical() bool { return true }
