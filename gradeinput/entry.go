//
// Package gradeinput turns the text a teacher types into a gradebook
// cell into a canonical grade entry: the grade to display and the
// score in points, according to how the assignment is graded.
//
package gradeinput

import (
	"encoding/json"

	"github.com/nsip/otf-grade/gradingscheme"
	"github.com/nsip/otf-grade/numeric"
)

//
// Mode is how grades are entered for an assignment.
//
type Mode string

const (
	Points        Mode = "points"
	Percent       Mode = "percent"
	GradingScheme Mode = "gradingScheme"
	PassFail      Mode = "passFail"
)

//
// EnteredAs records which interpretation produced an entry.
// The zero value means nothing was recognised.
//
type EnteredAs string

const (
	EnteredAsNone          EnteredAs = ""
	EnteredAsPoints        EnteredAs = "points"
	EnteredAsPercent       EnteredAs = "percent"
	EnteredAsGradingScheme EnteredAs = "gradingScheme"
	EnteredAsPassFail      EnteredAs = "passFail"
	EnteredAsExcused       EnteredAs = "excused"
)

// MarshalJSON writes EnteredAsNone as null.
func (e EnteredAs) MarshalJSON() ([]byte, error) {
	if e == EnteredAsNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(e))
}

//
// NumberParser reads locale formatted numbers.
// numeric.Parser is the usual implementation.
//
type NumberParser interface {
	Parse(text string) (float64, bool)
}

//
// Options describes the assignment a value is entered for.
//
type Options struct {
	// how grades are entered, defaults to Points
	EnterGradesAs Mode
	// bands for scheme keys, nil when the assignment has none
	GradingScheme gradingscheme.Scheme
	// maximum score, zero when none is configured
	PointsPossible float64
	// locale aware number reader, nil uses numeric.Default
	Numbers NumberParser
}

func (o Options) numbers() NumberParser {
	if o.Numbers == nil {
		return numeric.Default
	}
	return o.Numbers
}

//
// GradeEntry is the canonical result for one entered value.
// Grade and Score are nil when absent.
//
type GradeEntry struct {
	EnteredAs EnteredAs `json:"enteredAs"`
	Excused   bool      `json:"excused"`
	Grade     *string   `json:"grade"`
	Score     *float64  `json:"score"`
}

//
// Ungraded is the entry for blank or unrecognised input.
//
func Ungraded() GradeEntry {
	return GradeEntry{}
}

func excusedEntry() GradeEntry {
	return GradeEntry{EnteredAs: EnteredAsExcused, Excused: true}
}

func graded(as EnteredAs, grade *string, score float64) GradeEntry {
	if score == 0 {
		// no "-0" on the wire
		score = 0
	}
	return GradeEntry{EnteredAs: as, Grade: grade, Score: &score}
}

//
// IsUngraded reports whether the entry carries no grade at all.
//
func (g GradeEntry) IsUngraded() bool {
	return g.EnteredAs == EnteredAsNone && !g.Excused && g.Grade == nil && g.Score == nil
}
