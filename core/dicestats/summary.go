// core/dicestats/summary.go
package dicestats

import (
	"errors"

	"github.com/aclements/go-moremath/stats"
)

// ErrNoRolls is returned when a frequency table holds no observations.
var ErrNoRolls = errors.New("no rolls recorded")

// RollCount is one face value and the number of times it was rolled.
type RollCount struct {
	Value int
	Count int
}

// Summary describes one die's rolls: per-face counts sorted ascending by
// face value, the total roll count, and the frequency-weighted mean.
type Summary struct {
	Rolls []RollCount
	Total int
	Mean  float64
	Min   int
	Max   int
}

// Summarize derives a Summary from a frequency table. The table is
// sparse: only faces that were actually rolled appear in it.
func Summarize(counts map[int]int) (Summary, error) {
	if len(counts) == 0 {
		return Summary{}, ErrNoRolls
	}

	rolls := sortedCounts(counts)

	sample := stats.Sample{
		Xs:      make([]float64, len(rolls)),
		Weights: make([]float64, len(rolls)),
	}
	total := 0
	for i, rc := range rolls {
		sample.Xs[i] = float64(rc.Value)
		sample.Weights[i] = float64(rc.Count)
		total += rc.Count
	}
	if total == 0 {
		return Summary{}, ErrNoRolls
	}

	return Summary{
		Rolls: rolls,
		Total: total,
		Mean:  sample.Mean(),
		Min:   rolls[0].Value,
		Max:   rolls[len(rolls)-1].Value,
	}, nil
}
