package benchmark

import (
	"fmt"
	"math"
)

// Score converts a measurement into a score relative to the reference
// machine: 100 means the same per-run time as the reference.
//
//	score = 100 * referenceUs / (elapsedUs / runs)
func Score(referenceUs, elapsedUs int64, runs int) (float64, error) {
	if runs <= 0 {
		return 0, fmt.Errorf("%w: run count %d", ErrInvalidMeasurement, runs)
	}
	if elapsedUs <= 0 {
		return 0, fmt.Errorf("%w: elapsed %dus", ErrInvalidMeasurement, elapsedUs)
	}
	if referenceUs <= 0 {
		return 0, fmt.Errorf("%w: reference %dus", ErrInvalidMeasurement, referenceUs)
	}
	usecPerRun := float64(elapsedUs) / float64(runs)
	return 100.0 * float64(referenceUs) / usecPerRun, nil
}

// ScoreResult scores r against d's reference time.
func ScoreResult(d Descriptor, r Result) (float64, error) {
	s, err := Score(d.referenceUs, r.ElapsedUs, r.Runs)
	if err != nil {
		return 0, fmt.Errorf("score %s: %w", d.name, err)
	}
	return s, nil
}

// AggregateScore returns the geometric mean of scores,
// exp(mean(ln(score_i))). An empty input or any non-positive or
// non-finite score is rejected.
func AggregateScore(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrEmptySuite
	}
	var logTotal float64
	for i, s := range scores {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return 0, fmt.Errorf("%w: score %d is %v", ErrInvalidMeasurement, i, s)
		}
		logTotal += math.Log(s)
	}
	return math.Exp(logTotal / float64(len(scores))), nil
}

// AggregateResults is AggregateScore over the Score field of results.
func AggregateResults(results []Result) (float64, error) {
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	return AggregateScore(scores)
}
