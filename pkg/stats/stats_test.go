package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name    string
		current int
		target  int
		want    int
	}{
		{"zero target is defined as zero", 50, 0, 0},
		{"full completion", 30, 30, 100},
		{"half completion", 15, 30, 50},
		{"rounded", 1, 3, 33},
		{"over-completion capped at 100", 90, 30, 100},
		{"nothing done", 0, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionRate(tt.current, tt.target))
		})
	}
}

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, 50.0, GrowthRate(100, 150))
	assert.Equal(t, -50.0, GrowthRate(100, 50))
	assert.Equal(t, 100.0, GrowthRate(0, 100))
	assert.Equal(t, 0.0, GrowthRate(0, 0))
}

func TestPercentageChange_SharesGrowthRateContract(t *testing.T) {
	assert.Equal(t, 25.0, PercentageChange(80, 100))
	assert.Equal(t, 100.0, PercentageChange(0, 5))
	assert.Equal(t, 0.0, PercentageChange(0, 0))
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{10, 20, 30, 40, 50}, 3)
	assert.Equal(t, []float64{10, 15, 20, 30, 40}, got)
}

func TestMovingAverage_WindowOne(t *testing.T) {
	series := []float64{3, 1, 4}
	assert.Equal(t, series, MovingAverage(series, 1))
}

func TestMovingAverage_Empty(t *testing.T) {
	assert.Empty(t, MovingAverage(nil, 3))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{1, 3, 5}))
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 42.0, Median([]float64{42}))
	assert.Equal(t, 0.0, Median(nil))
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	series := []float64{5, 1, 3}
	Median(series)
	assert.Equal(t, []float64{5, 1, 3}, series)
}

func TestStandardDeviation(t *testing.T) {
	// population deviation, divide by N
	assert.InDelta(t, 2.0, StandardDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.0001)
	assert.Equal(t, 0.0, StandardDeviation([]float64{5, 5, 5}))
	assert.Equal(t, 0.0, StandardDeviation(nil))
}

func TestQuartiles(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	// rank ceil(8/4)=2 and ceil(24/4)=6, 1-indexed on the sorted series
	assert.Equal(t, 2.0, Quartile1(series))
	assert.Equal(t, 6.0, Quartile3(series))

	odd := []float64{9, 1, 5, 3, 7}
	// ceil(5/4)=2 -> 3, ceil(15/4)=4 -> 7
	assert.Equal(t, 3.0, Quartile1(odd))
	assert.Equal(t, 7.0, Quartile3(odd))

	assert.Equal(t, 0.0, Quartile1(nil))
	assert.Equal(t, 0.0, Quartile3(nil))
	assert.Equal(t, 4.0, Quartile1([]float64{4}))
	assert.Equal(t, 4.0, Quartile3([]float64{4}))
}

func TestRange(t *testing.T) {
	r := Range([]float64{4, 1, 9, 2})
	assert.Equal(t, SeriesRange{Min: 1, Max: 9, Range: 8}, r)

	assert.Equal(t, SeriesRange{}, Range(nil))
}

func TestZScoreClass(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		mean   float64
		stdDev float64
		want   ZScoreClassification
	}{
		{"zero deviation is always normal", 1000, 10, 0, ClassNormal},
		{"far above is outlier", 50, 10, 10, ClassOutlier},
		{"far below is outlier too", -30, 10, 10, ClassOutlier},
		{"above two deviations is extreme", 35, 10, 10, ClassExtreme},
		{"below minus two deviations is extreme", -15, 10, 10, ClassExtreme},
		{"above one deviation is high", 25, 10, 10, ClassHigh},
		{"below minus one deviation is low", -5, 10, 10, ClassLow},
		{"near the mean is normal", 15, 10, 10, ClassNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ZScoreClass(tt.value, tt.mean, tt.stdDev))
		})
	}
}

func TestPearsonCorrelation(t *testing.T) {
	assert.InDelta(t, 1.0, PearsonCorrelation([]float64{1, 2, 3}, []float64{2, 4, 6}), 0.0001)
	assert.InDelta(t, -1.0, PearsonCorrelation([]float64{1, 2, 3}, []float64{6, 4, 2}), 0.0001)
	assert.Equal(t, 0.0, PearsonCorrelation([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, PearsonCorrelation(nil, nil))
	assert.Equal(t, 0.0, PearsonCorrelation([]float64{1, 2, 3}, []float64{5, 5, 5}))
}

func TestPredictNextValue(t *testing.T) {
	assert.InDelta(t, 60.0, PredictNextValue([]float64{10, 20, 30, 40, 50}), 0.1)
	assert.InDelta(t, 100.0, PredictNextValue([]float64{100, 100, 100, 100}), 0.1)
	assert.Equal(t, 42.0, PredictNextValue([]float64{42}))
	assert.Equal(t, 0.0, PredictNextValue(nil))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 3.14, RoundTo(3.14159, 2))
	assert.Equal(t, 3.15, RoundTo(3.145, 2))
	assert.Equal(t, 10.0, RoundTo(9.5, 0))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 33.3, Percentage(1, 3, 1))
	assert.Equal(t, 0.0, Percentage(5, 0, 1))
	assert.Equal(t, 50.0, Percentage(1, 2, 1))
}
