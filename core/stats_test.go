package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanMedian(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		wantMean   float64
		wantMedian float64
	}{
		{name: "odd length", values: []float64{3, 1, 2}, wantMean: 2, wantMedian: 2},
		{name: "even length", values: []float64{4, 1, 3, 2}, wantMean: 2.5, wantMedian: 2.5},
		{name: "single value", values: []float64{7}, wantMean: 7, wantMedian: 7},
		{name: "negative values", values: []float64{-1, 1, -3}, wantMean: -1, wantMedian: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantMean, mean(tt.values), 1e-12)
			assert.InDelta(t, tt.wantMedian, median(tt.values), 1e-12)
		})
	}

	assert.True(t, math.IsNaN(mean(nil)))
	assert.True(t, math.IsNaN(median(nil)))
}

func TestMedianKeepsInputOrder(t *testing.T) {
	values := []float64{5, 1, 4}
	_ = median(values)
	assert.Equal(t, []float64{5, 1, 4}, values)
}

func TestSampleStd(t *testing.T) {
	// Sample std of 2,4,4,4,5,5,7,9 with n-1 denominator
	assert.InDelta(t, 2.138089935, sampleStd([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.Equal(t, 0.0, sampleStd([]float64{3, 3, 3}))
	assert.True(t, math.IsNaN(sampleStd([]float64{1})))
	assert.True(t, math.IsNaN(sampleStd(nil)))
	assert.True(t, math.IsNaN(sampleStd([]float64{1, math.Inf(1)})))
}

func TestMinMax(t *testing.T) {
	lo, hi := minMax([]float64{3, -2, math.NaN(), math.Inf(1), 0})
	assert.Equal(t, -2.0, lo)
	assert.True(t, math.IsInf(hi, 1))

	lo, hi = minMax([]float64{math.NaN()})
	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))
}
