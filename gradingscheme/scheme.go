//
// Package gradingscheme maps grading-scheme keys (letter grades,
// GPA points, labels) to percentages and back.
//
package gradingscheme

import (
	"fmt"
	"math"
	"strings"

	"github.com/nsip/otf-grade/numeric"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//
// Entry is one band of a scheme: the key and the lowest
// ratio (0..1) of points that earns it.
//
type Entry struct {
	Key       string  `json:"key"`
	Threshold float64 `json:"value"`
}

//
// Scheme is an ordered list of bands, highest threshold first.
// A nil Scheme means no scheme is configured.
//
type Scheme []Entry

var (
	hundred      = decimal.NewFromInt(100)
	coarseOffset = decimal.New(1, -2)
	fineOffset   = decimal.New(1, -3)
)

func (s Scheme) indexOf(grade string) int {
	clean := strings.ToLower(strings.TrimSpace(grade))
	for i, e := range s {
		if strings.ToLower(e.Key) == clean {
			return i
		}
	}
	return -1
}

//
// GradeToScore returns the percentage (0-100) represented by the
// given key, matched case-insensitively.
// The top band is worth 100; any other band is worth just under
// the threshold of the band above it.
//
func GradeToScore(grade string, s Scheme) (float64, bool) {
	idx := s.indexOf(grade)
	if idx < 0 {
		return 0, false
	}
	if idx == 0 {
		return 100, true
	}

	matching := decimal.NewFromFloat(s[idx].Threshold)
	higher := decimal.NewFromFloat(s[idx-1].Threshold)

	// finely grained schemes need a smaller step
	offset := coarseOffset
	if higher.Sub(matching).LessThan(coarseOffset) {
		offset = fineOffset
	}

	pct, _ := higher.Sub(offset).Mul(hundred).Float64()
	return pct, true
}

//
// ScoreToGrade returns the key of the first band whose threshold
// the percentage reaches, or the lowest band when it reaches none.
// Returns false for an empty scheme or a non-finite percentage.
//
// The percentage is rounded to 4 fractional digits and negative
// values are treated as 0 before comparing, so 56.99999999999999
// (5.7/10*100) reaches a 0.57 band and 89.99996 reaches 0.9.
//
func ScoreToGrade(percentage float64, s Scheme) (string, bool) {
	if len(s) == 0 || math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		return "", false
	}

	score := decimal.NewFromFloat(numeric.Round(percentage, 4))
	if score.IsNegative() {
		score = decimal.Zero
	}

	last := len(s) - 1
	for i, e := range s {
		threshold := decimal.NewFromFloat(e.Threshold).Mul(hundred)
		if score.GreaterThanOrEqual(threshold) || i == last {
			return e.Key, true
		}
	}

	return "", false
}

//
// Validate checks that every threshold lies within 0..1, that
// thresholds never increase and that keys are present and unique.
//
func (s Scheme) Validate() error {
	seen := make(map[string]bool, len(s))
	for i, e := range s {
		if strings.TrimSpace(e.Key) == "" {
			return errors.New(fmt.Sprintf("grading scheme entry %d has no key", i))
		}
		k := strings.ToLower(e.Key)
		if seen[k] {
			return errors.New(fmt.Sprintf("grading scheme key %q is repeated", e.Key))
		}
		seen[k] = true
		if math.IsNaN(e.Threshold) || e.Threshold < 0 || e.Threshold > 1 {
			return errors.New(fmt.Sprintf("grading scheme key %q has threshold %v outside 0..1", e.Key, e.Threshold))
		}
		if i > 0 && e.Threshold > s[i-1].Threshold {
			return errors.New(fmt.Sprintf("grading scheme key %q is ordered above a lower band", e.Key))
		}
	}
	return nil
}
