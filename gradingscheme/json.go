package gradingscheme

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// FromJSON reads a scheme from either of the shapes gradebooks send:
//
//	[["A", 0.9], ["B", 0.8]]
//	[{"key": "A", "value": 0.9}, {"key": "B", "value": 0.8}]
//
// A missing or null value yields a nil Scheme.
//
func FromJSON(r gjson.Result) (Scheme, error) {
	if !r.Exists() || r.Type == gjson.Null {
		return nil, nil
	}
	if !r.IsArray() {
		return nil, errors.New("gradingScheme must be an array")
	}

	rows := r.Array()
	s := make(Scheme, 0, len(rows))
	for i, row := range rows {
		var key, threshold gjson.Result
		switch {
		case row.IsArray():
			pair := row.Array()
			if len(pair) != 2 {
				return nil, errors.New(fmt.Sprintf("gradingScheme row %d must be a [key, value] pair", i))
			}
			key, threshold = pair[0], pair[1]
		case row.IsObject():
			key, threshold = row.Get("key"), row.Get("value")
		default:
			return nil, errors.New(fmt.Sprintf("gradingScheme row %d is not a pair", i))
		}

		if key.Type != gjson.String && key.Type != gjson.Number {
			return nil, errors.New(fmt.Sprintf("gradingScheme row %d has no key", i))
		}
		if threshold.Type != gjson.Number {
			return nil, errors.New(fmt.Sprintf("gradingScheme row %d has a non-numeric value", i))
		}
		k := key.String()
		if key.Type == gjson.Number {
			// keep numeric keys exactly as written, e.g. "4.0"
			k = key.Raw
		}
		s = append(s, Entry{Key: k, Threshold: threshold.Float()})
	}

	return s, nil
}
