package core

import (
	"math"

	"github.com/huangsam/samplerate/schema"
)

// BuildHistogram buckets finite rates into equal-width bins.
// Non-finite rates are only counted. A bins value below 1 is treated as 1.
func BuildHistogram(rates []float64, bins int) schema.RateHistogram {
	bins = max(bins, 1)

	var h schema.RateHistogram
	finite := make([]float64, 0, len(rates))
	for _, r := range rates {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			h.NonFinite++
			continue
		}
		finite = append(finite, r)
	}
	if len(finite) == 0 {
		return h
	}

	lo, hi := minMax(finite)
	if lo == hi {
		h.Bins = []schema.HistogramBin{{Lower: lo, Upper: hi, Count: len(finite)}}
		return h
	}

	width := (hi - lo) / float64(bins)
	h.Bins = make([]schema.HistogramBin, bins)
	for i := range h.Bins {
		h.Bins[i].Lower = lo + float64(i)*width
		h.Bins[i].Upper = lo + float64(i+1)*width
	}
	h.Bins[bins-1].Upper = hi

	for _, r := range finite {
		idx := min(int((r-lo)/width), bins-1)
		h.Bins[idx].Count++
	}
	return h
}
