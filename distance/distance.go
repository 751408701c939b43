package distance

import (
	"fmt"
	"math"
)

// SquaredL2 calculates the squared Euclidean distance between two scalars.
func SquaredL2(a, b float64) float64 {
	d := a - b
	return d * d
}

// Absolute calculates the absolute difference between two scalars.
func Absolute(a, b float64) float64 {
	return math.Abs(a - b)
}

// Euclidean calculates the Euclidean distance between two scalars.
// For scalars this equals Absolute; it exists so configuration can name
// the metric it means.
func Euclidean(a, b float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Metric represents the distance metric used for value comparison.
type Metric int

const (
	MetricSquaredL2 Metric = iota
	MetricAbsolute
	MetricEuclidean
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricAbsolute:
		return "Absolute"
	case MetricEuclidean:
		return "Euclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation. Implementations must
// return a non-negative value for any pair of inputs.
type Func func(a, b float64) float64

// Default is the distance function used when none is configured.
var Default Func = SquaredL2

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricAbsolute:
		return Absolute, nil
	case MetricEuclidean:
		return Euclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
