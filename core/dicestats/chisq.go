// core/dicestats/chisq.go
package dicestats

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"dicestats-core/rollfile"
)

// ErrInsufficientData is returned when a chi-squared test is requested
// for fewer than two observed categories.
var ErrInsufficientData = errors.New("chi-squared test needs at least 2 observed categories")

// ChiSquaredResult holds one die's goodness-of-fit outcome against the
// uniform (fair die) null hypothesis.
type ChiSquaredResult struct {
	Statistic float64
	PValue    float64
}

// ChiSquaredTest runs a one-sample chi-squared goodness-of-fit test on
// observed category counts. The expected count for every category is the
// mean of the observed counts, i.e. a uniform null over the k categories
// actually observed. Faces that were never rolled contribute no category,
// so k is inferred from the data, not from the die's nominal side count.
// Degrees of freedom = k-1.
func ChiSquaredTest(observed []float64) (ChiSquaredResult, error) {
	k := len(observed)
	if k < 2 {
		return ChiSquaredResult{}, ErrInsufficientData
	}

	mean := floats.Sum(observed) / float64(k)
	expected := make([]float64, k)
	for i := range expected {
		expected[i] = mean
	}

	statistic := stat.ChiSquare(observed, expected)
	dist := distuv.ChiSquared{K: float64(k - 1)}
	return ChiSquaredResult{
		Statistic: statistic,
		PValue:    dist.Survival(statistic),
	}, nil
}

// ChiSquaredAll runs the per-die test for each record independently and
// keys the results by trimmed description. When two records trim to the
// same description the later one overwrites the earlier.
func ChiSquaredAll(records []rollfile.Record) (map[string]ChiSquaredResult, error) {
	results := make(map[string]ChiSquaredResult, len(records))
	for _, rec := range records {
		observed := make([]float64, 0, len(rec.Counts))
		for _, rc := range sortedCounts(rec.Counts) {
			observed = append(observed, float64(rc.Count))
		}
		res, err := ChiSquaredTest(observed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Path, err)
		}
		results[rec.Name()] = res
	}
	return results, nil
}

func sortedCounts(counts map[int]int) []RollCount {
	rolls := make([]RollCount, 0, len(counts))
	for v, c := range counts {
		rolls = append(rolls, RollCount{Value: v, Count: c})
	}
	sort.Slice(rolls, func(i, j int) bool { return rolls[i].Value < rolls[j].Value })
	return rolls
}
