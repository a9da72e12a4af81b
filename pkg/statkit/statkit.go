// Package statkit summarises a set of numbers.
package statkit

import (
	"github.com/montanaflynn/stats"
	"go.llib.dev/asuna"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Summary holds the descriptive statistics of a data set.
// Variance and StdDev are sample statistics (n-1 denominator).
type Summary struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Mode     float64 `json:"mode"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stdev"`
}

// Describe computes the Summary of vs.
//
// It fails with asuna.ErrEmptyInput when vs is empty,
// with asuna.ErrInsufficientData when vs has a single value,
// and with asuna.ErrNoUniqueMode when more than one value is equally the most common,
// including the case where every value is distinct.
func Describe[N Number](vs []N) (Summary, error) {
	if len(vs) == 0 {
		return Summary{}, asuna.ErrEmptyInput.F("mean requires at least one data point")
	}
	if len(vs) < 2 {
		return Summary{}, asuna.ErrInsufficientData.F("variance requires at least two data points")
	}
	data := make(stats.Float64Data, len(vs))
	for i, v := range vs {
		data[i] = float64(v)
	}

	var (
		sum Summary
		err error
	)
	if sum.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if sum.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if sum.Mode, err = Mode(vs); err != nil {
		return Summary{}, err
	}
	if sum.Variance, err = stats.SampleVariance(data); err != nil {
		return Summary{}, err
	}
	if sum.StdDev, err = stats.StandardDeviationSample(data); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// Mode returns the single most common value of vs.
func Mode[N Number](vs []N) (float64, error) {
	if len(vs) == 0 {
		return 0, asuna.ErrEmptyInput.F("no mode for empty data")
	}
	data := make(stats.Float64Data, len(vs))
	for i, v := range vs {
		data[i] = float64(v)
	}
	modes, err := stats.Mode(data)
	if err != nil {
		return 0, err
	}
	if len(modes) != 1 {
		return 0, asuna.ErrNoUniqueMode.F("more than one value is equally the most common in %v", vs)
	}
	return modes[0], nil
}
