//
// Package numeric parses teacher-entered numbers and keeps track of
// the precision they were typed with, so that converting between
// points and percentages never invents or loses digits.
//
package numeric

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//
// the maximum precision of a score persisted to the database,
// also the cap applied when measuring typed precision
//
const MaxPrecision = 15

// the percent sign variants a teacher may type
var percentSigns = regexp.MustCompile(`[%％﹪٪]`)

var plainNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)$`)

//
// Parser reads numbers written with a given pair of
// decimal and thousands separators.
//
type Parser struct {
	Decimal   string
	Thousands string
}

//
// Default uses '.' for decimals and ',' for thousands.
//
var Default = Parser{Decimal: ".", Thousands: ","}

//
// Parse converts text into a number.
// Returns false (never an error) when the text is not a valid
// number for the parser's separators, the default separators
// or, if the text carries an exponent, scientific notation.
//
func (p Parser) Parse(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	if v, ok := parseWith(text, p.Decimal, p.Thousands); ok {
		return v, true
	}
	if p != Default {
		if v, ok := parseWith(text, Default.Decimal, Default.Thousands); ok {
			return v, true
		}
	}
	if strings.ContainsAny(text, "eE") {
		v, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return v, true
		}
		// underflow reads as zero, overflow is rejected
		if errors.Is(err, strconv.ErrRange) && v == 0 {
			return 0, true
		}
	}

	return 0, false
}

func parseWith(text, dec, thousands string) (float64, bool) {
	if thousands != "" {
		text = strings.ReplaceAll(text, thousands, "")
	}
	if dec != "" && dec != "." {
		// a literal '.' is only valid as the decimal separator
		if strings.Contains(text, ".") {
			return 0, false
		}
		text = strings.Replace(text, dec, ".", 1)
	}
	if !plainNumber.MatchString(text) {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

//
// StripPercent removes the first percent sign found in text,
// whichever variant was used.
//
func StripPercent(text string) string {
	loc := percentSigns.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + text[loc[1]:]
}

//
// PrecisionOf reports the number of fractional digits in the shortest
// decimal representation of v, capped at MaxPrecision.
//
func PrecisionOf(v float64) int {
	parts := strings.Split(Format(v), ".")
	if len(parts) != 2 {
		return 0
	}
	if n := len(parts[1]); n < MaxPrecision {
		return n
	}
	return MaxPrecision
}

//
// Round rounds v half away from zero to the given number of
// fractional digits, working on v's exact decimal representation.
//
func Round(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(int32(digits)).Float64()
	return f
}

//
// Format renders v as the shortest decimal text that reads back
// as the same number, e.g. 8, 8.34, 0.8123456789.
// Negative zero renders as "0".
//
func Format(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
