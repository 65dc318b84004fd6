package gradeinput

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nsip/otf-grade/gradingscheme"
	"github.com/nsip/otf-grade/numeric"
)

// the marker a teacher types to excuse a student from an assignment
const excusedMarker = "EX"

//
// one successful interpretation of a value,
// all four representations derived from the same parse
//
type parsed struct {
	enteredAs EnteredAs
	percent   float64
	points    float64
	schemeKey *string
}

// a score must survive being stored and encoded
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// an interpreter returns nil when it does not recognise the value
type interpreter func(value string, opts Options) *parsed

func schemeKeyFor(percentage float64, s gradingscheme.Scheme) *string {
	key, ok := gradingscheme.ScoreToGrade(percentage, s)
	if !ok {
		return nil
	}
	return &key
}

func asGradingScheme(value string, opts Options) *parsed {
	if opts.GradingScheme == nil {
		return nil
	}

	percentage, ok := gradingscheme.GradeToScore(value, opts.GradingScheme)
	if !ok {
		return nil
	}

	r := &parsed{
		enteredAs: EnteredAsGradingScheme,
		schemeKey: schemeKeyFor(percentage, opts.GradingScheme),
	}
	if opts.PointsPossible != 0 {
		r.percent = percentage
		r.points = percentage / opts.PointsPossible
		if !finite(r.points) {
			return nil
		}
	}
	return r
}

func asPercent(value string, opts Options) *parsed {
	percentage, ok := opts.numbers().Parse(numeric.StripPercent(value))
	if !ok {
		return nil
	}

	percent := percentage
	var points float64
	if opts.PointsPossible != 0 {
		points = numeric.Round(percentage/100*opts.PointsPossible, numeric.PrecisionOf(percentage)+2)
		if !finite(points) {
			return nil
		}
	} else {
		// nothing to scale against, so only a bare number counts as points
		points, ok = opts.numbers().Parse(value)
		if !ok {
			percent, points = 0, 0
		}
	}

	return &parsed{
		enteredAs: EnteredAsPercent,
		percent:   percent,
		points:    points,
		schemeKey: schemeKeyFor(percent, opts.GradingScheme),
	}
}

func asPoints(value string, opts Options) *parsed {
	points, ok := opts.numbers().Parse(value)
	if !ok {
		return nil
	}

	var percent float64
	if opts.PointsPossible != 0 {
		percent = points / opts.PointsPossible * 100
	}

	return &parsed{
		enteredAs: EnteredAsPoints,
		points:    points,
		schemeKey: schemeKeyFor(percent, opts.GradingScheme),
	}
}

func firstParsed(value string, opts Options, chain ...interpreter) *parsed {
	for _, interpret := range chain {
		if r := interpret(value, opts); r != nil {
			return r
		}
	}
	return nil
}

func parseForGradingScheme(value string, opts Options) GradeEntry {
	r := firstParsed(value, opts, asGradingScheme, asPoints, asPercent)
	if r == nil {
		return Ungraded()
	}
	return graded(r.enteredAs, r.schemeKey, r.points)
}

func parseForPercent(value string, opts Options) GradeEntry {
	r := firstParsed(value, opts, asPercent, asGradingScheme)
	if r == nil {
		return Ungraded()
	}
	grade := numeric.Format(r.percent) + "%"
	return graded(r.enteredAs, &grade, r.points)
}

func parseForPoints(value string, opts Options) GradeEntry {
	r := firstParsed(value, opts, asPoints, asGradingScheme, asPercent)
	if r == nil {
		return Ungraded()
	}
	grade := numeric.Format(r.points)
	return graded(r.enteredAs, &grade, r.points)
}

func parseForPassFail(value string, opts Options) GradeEntry {
	switch {
	case strings.EqualFold(value, "complete"):
		grade := "complete"
		return graded(EnteredAsPassFail, &grade, opts.PointsPossible)
	case strings.EqualFold(value, "incomplete"):
		grade := "incomplete"
		return graded(EnteredAsPassFail, &grade, 0)
	}
	return Ungraded()
}

//
// IsExcused reports whether value, ignoring surrounding
// whitespace, is exactly the excused marker "EX".
//
func IsExcused(value string) bool {
	return strings.TrimSpace(value) == excusedMarker
}

//
// ParseTextValue interprets a value typed into a gradebook cell.
// Unrecognised input is never an error: it yields the Ungraded entry.
//
func ParseTextValue(value string, opts Options) GradeEntry {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Ungraded()
	}
	if IsExcused(trimmed) {
		return excusedEntry()
	}

	switch opts.EnterGradesAs {
	case GradingScheme:
		return parseForGradingScheme(trimmed, opts)
	case Percent:
		return parseForPercent(trimmed, opts)
	case PassFail:
		return parseForPassFail(trimmed, opts)
	default:
		return parseForPoints(trimmed, opts)
	}
}

//
// ParseValue is ParseTextValue for values that arrive as numbers
// (or nil) rather than text.
//
func ParseValue(value interface{}, opts Options) GradeEntry {
	return ParseTextValue(Stringify(value), opts)
}

//
// Stringify renders a cell value as the text a teacher would
// have typed for it. nil renders as the empty string.
//
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return numeric.Format(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
