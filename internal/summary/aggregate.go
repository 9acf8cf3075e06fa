package summary

import (
	"github.com/montanaflynn/stats"

	"github.com/DjordjeVuckovic/runplot/pkg/utils"
)

const precision = 6

// Aggregate groups runs by label in first-seen order. Deviations are
// population standard deviations.
func Aggregate(runs []Run) []Aggregated {
	var order []string
	groups := make(map[string][]Run)
	for _, r := range runs {
		if _, ok := groups[r.Label]; !ok {
			order = append(order, r.Label)
		}
		groups[r.Label] = append(groups[r.Label], r)
	}

	out := make([]Aggregated, 0, len(order))
	for _, label := range order {
		g := groups[label]
		testErr := make(stats.Float64Data, len(g))
		validErr := make(stats.Float64Data, len(g))
		elapsed := make(stats.Float64Data, len(g))
		epochs := make(stats.Float64Data, len(g))
		for i, r := range g {
			testErr[i] = r.TestError
			validErr[i] = r.ValidError
			elapsed[i] = r.Elapsed
			epochs[i] = float64(r.OptimumEpoch)
		}

		agg := Aggregated{Label: label, Trials: len(g)}
		agg.TestErrorMean, agg.TestErrorStd = meanStd(testErr)
		agg.ValidErrorMean, agg.ValidErrorStd = meanStd(validErr)
		agg.ElapsedMean, agg.ElapsedStd = meanStd(elapsed)
		agg.OptimumEpochMean, _ = meanStd(epochs)
		out = append(out, agg)
	}

	return out
}

func meanStd(data stats.Float64Data) (float64, float64) {
	mean, _ := stats.Mean(data)             // nolint: errcheck
	std, _ := stats.StandardDeviation(data) // nolint: errcheck
	return utils.RoundDecimal(mean, precision), utils.RoundDecimal(std, precision)
}
