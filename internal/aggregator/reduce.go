package aggregator

import (
	"math"
	"sort"

	"github.com/pable/go-nba-metrics/internal/model"
)

// round rounds x half away from zero to the given number of decimals.
func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// rate returns num/den, or 0 when den is 0.
func rate(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median returns the middle value of sorted; for even lengths, the mean of the two middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// distribution buckets shot distances: [0,5], (5,15], (15,22], (22,inf).
func distribution(dists []float64) model.DistanceDistribution {
	var d model.DistanceDistribution
	for _, v := range dists {
		switch {
		case v <= 5:
			d.UpTo5++
		case v <= 15:
			d.UpTo15++
		case v <= 22:
			d.UpTo22++
		default:
			d.Beyond22++
		}
	}
	return d
}

func filterShots(shots []model.ShotRecord, keep func(model.ShotRecord) bool) []model.ShotRecord {
	var out []model.ShotRecord
	for _, s := range shots {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func countMade(shots []model.ShotRecord) int {
	n := 0
	for _, s := range shots {
		if s.Made {
			n++
		}
	}
	return n
}

func sortedDistances(shots []model.ShotRecord) []float64 {
	d := make([]float64, len(shots))
	for i, s := range shots {
		d[i] = s.ShotDist
	}
	sort.Float64s(d)
	return d
}
