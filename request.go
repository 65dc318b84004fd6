package otfgrade

import (
	"github.com/nsip/otf-grade/gradeinput"
	"github.com/nsip/otf-grade/gradingscheme"
	"github.com/nsip/otf-grade/numeric"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// Request payload, sent as json:
//
//	{
//	  "value": "83.5%",            // text or number, or "values": [...] for a column
//	  "enterGradesAs": "points",   // points | percent | gradingScheme | passFail
//	  "gradingScheme": [["A", 0.9], ["B", 0.8]],
//	  "pointsPossible": 10,
//	  "locale": "en"               // optional, separators used to read numbers
//	}
//
// value and the scheme rows are heterogeneous so the body is read
// with gjson rather than bound to a struct.
//

//
// read the grading settings shared by single and column requests
//
func gradeOptions(body []byte, defaultLocale string) (gradeinput.Options, error) {

	opts := gradeinput.Options{}

	if !gjson.ValidBytes(body) {
		return opts, errors.New("request body is not valid json")
	}

	mode := gjson.GetBytes(body, "enterGradesAs")
	if mode.Exists() && mode.Type != gjson.String && mode.Type != gjson.Null {
		return opts, errors.New("enterGradesAs must be a string")
	}
	opts.EnterGradesAs = gradeinput.Mode(mode.String())

	scheme, err := gradingscheme.FromJSON(gjson.GetBytes(body, "gradingScheme"))
	if err != nil {
		return opts, errors.Wrap(err, "cannot read gradingScheme")
	}
	if err := scheme.Validate(); err != nil {
		return opts, errors.Wrap(err, "invalid gradingScheme")
	}
	opts.GradingScheme = scheme

	// null and 0 both mean no points possible
	pp := gjson.GetBytes(body, "pointsPossible")
	if pp.Exists() && pp.Type != gjson.Number && pp.Type != gjson.Null {
		return opts, errors.New("pointsPossible must be a number")
	}
	opts.PointsPossible = pp.Float()

	locale := gjson.GetBytes(body, "locale").String()
	if locale == "" {
		locale = defaultLocale
	}
	opts.Numbers = numeric.ForLocale(locale)

	return opts, nil
}

//
// the text typed into a cell, numbers are rendered
// as they would have been typed
//
func cellText(r gjson.Result) (string, error) {
	switch r.Type {
	case gjson.Null:
		return "", nil
	case gjson.String:
		return r.Str, nil
	case gjson.Number:
		return numeric.Format(r.Num), nil
	default:
		return "", errors.New("grade values must be text or numbers")
	}
}

//
// read the list of cell values for a column request
//
func columnTexts(body []byte) ([]string, error) {
	values := gjson.GetBytes(body, "values")
	if !values.IsArray() {
		return nil, errors.New("values must be an array")
	}

	texts := make([]string, 0, len(values.Array()))
	for i, v := range values.Array() {
		txt, err := cellText(v)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
		texts = append(texts, txt)
	}
	return texts, nil
}
