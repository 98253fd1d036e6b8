// Package stats provides pure aggregation over per-day repetition counts and
// the generic descriptive statistics used by the progress dashboards.
//
// Every function is total over its documented domain: degenerate inputs
// (zero targets, empty series, zero deviation) yield defined zero values
// instead of errors. Callers are expected to validate inputs such as negative
// targets before calling; behavior outside the documented domain is
// unspecified.
package stats

import (
	"math"
	"sort"
)

// CompletionRate returns the percentage of target reached, rounded and capped
// at 100. A zero target reports 0, not an error.
func CompletionRate(current, target int) int {
	if target == 0 {
		return 0
	}
	rate := int(math.Round(float64(current) / float64(target) * 100))
	if rate > 100 {
		return 100
	}
	return rate
}

// GrowthRate returns the percentage change from previous to current,
// unrounded. Growth from a zero baseline reports a flat 100, and zero to zero
// reports 0.
func GrowthRate(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// PercentageChange has the same contract as GrowthRate.
func PercentageChange(original, current float64) float64 {
	return GrowthRate(original, current)
}

// MovingAverage returns a series of the same length where element i is the
// average of the trailing window ending at i. Near the start of the series
// the window is truncated on the left rather than left unfilled, so the first
// output always equals the first input.
func MovingAverage(series []float64, window int) []float64 {
	out := make([]float64, len(series))
	for i := range series {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for _, v := range series[start : i+1] {
			sum += v
		}
		out[i] = sum / float64(i-start+1)
	}
	return out
}

// Median returns the middle value of the series, or the mean of the two
// central values for an even length. The input is not mutated.
func Median(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sorted := sortedCopy(series)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// StandardDeviation returns the population standard deviation (divide by N).
func StandardDeviation(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	mean := sum(series) / float64(len(series))
	variance := 0.0
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(series))
	return math.Sqrt(variance)
}

// Quartile1 returns the first quartile using the rank ceil(N/4) on the sorted
// series (1-indexed, clamped into bounds). Compatibility with the existing
// reports depends on this exact convention.
func Quartile1(series []float64) float64 {
	return quartileAt(series, 1)
}

// Quartile3 returns the third quartile using the rank ceil(3N/4).
func Quartile3(series []float64) float64 {
	return quartileAt(series, 3)
}

func quartileAt(series []float64, quarter int) float64 {
	if len(series) == 0 {
		return 0
	}
	sorted := sortedCopy(series)
	rank := int(math.Ceil(float64(quarter) * float64(len(sorted)) / 4))
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

// SeriesRange describes the spread of a series.
type SeriesRange struct {
	Min   float64
	Max   float64
	Range float64
}

// Range returns the min, max, and their difference; all zeros for an empty
// series.
func Range(series []float64) SeriesRange {
	if len(series) == 0 {
		return SeriesRange{}
	}
	min, max := series[0], series[0]
	for _, v := range series[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return SeriesRange{Min: min, Max: max, Range: max - min}
}

// ZScoreClassification labels how far a value sits from the mean.
type ZScoreClassification string

const (
	ClassOutlier ZScoreClassification = "outlier"
	ClassExtreme ZScoreClassification = "extreme"
	ClassHigh    ZScoreClassification = "high"
	ClassNormal  ZScoreClassification = "normal"
	ClassLow     ZScoreClassification = "low"
)

// ZScoreClass classifies value against the given mean and standard deviation.
// Outlier and extreme are judged on |z|, while high and low use the signed
// z-score. A zero deviation always classifies as normal.
func ZScoreClass(value, mean, stdDev float64) ZScoreClassification {
	if stdDev == 0 {
		return ClassNormal
	}
	z := (value - mean) / stdDev
	switch {
	case math.Abs(z) > 3:
		return ClassOutlier
	case math.Abs(z) > 2:
		return ClassExtreme
	case z > 1:
		return ClassHigh
	case z < -1:
		return ClassLow
	}
	return ClassNormal
}

// PearsonCorrelation returns the correlation coefficient of the two series,
// or 0 when lengths mismatch, either is empty, or there is no variance.
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}
	n := float64(len(x))
	meanX := sum(x) / n
	meanY := sum(y) / n

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX*varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// PredictNextValue fits an ordinary least-squares line of value against index
// and evaluates it one step past the end of the series. Series shorter than
// two elements return the last element, or 0 when empty.
func PredictNextValue(series []float64) float64 {
	n := len(series)
	if n == 0 {
		return 0
	}
	if n < 2 {
		return series[n-1]
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range series {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	nf := float64(n)
	slope := (nf*sumXY - sumX*sumY) / (nf*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / nf

	return slope*nf + intercept
}

// RoundTo rounds half up at the given number of decimals.
func RoundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Floor(value*scale+0.5) / scale
}

// Percentage returns part of whole as a percentage rounded to the given
// decimals, or 0 when whole is 0.
func Percentage(part, whole float64, decimals int) float64 {
	if whole == 0 {
		return 0
	}
	return RoundTo(part/whole*100, decimals)
}

func sortedCopy(series []float64) []float64 {
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)
	return sorted
}

func sum(series []float64) float64 {
	total := 0.0
	for _, v := range series {
		total += v
	}
	return total
}
