package gradingscheme

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var letters = Scheme{{"A", 0.9}, {"B", 0.8}, {"C", 0.7}, {"D", 0.6}, {"F", 0.5}}

func TestGradeToScore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		grade string
		want  float64
	}{
		{"A", 100},
		{"B", 89},
		{"b", 89},
		{" B ", 89},
		{"F", 59},
	}
	for _, tc := range cases {
		got, ok := GradeToScore(tc.grade, letters)
		require.True(t, ok, tc.grade)
		assert.Equal(t, tc.want, got, tc.grade)
	}

	_, ok := GradeToScore("B-", letters)
	assert.False(t, ok)
	_, ok = GradeToScore("B", nil)
	assert.False(t, ok)
}

func TestGradeToScore_FineGrainedScheme(t *testing.T) {
	t.Parallel()

	fine := Scheme{{"A", 0.95}, {"A-", 0.945}, {"B", 0.8}}
	got, ok := GradeToScore("A-", fine)
	require.True(t, ok)
	assert.Equal(t, 94.9, got)
}

func TestScoreToGrade(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pct  float64
		want string
	}{
		{100, "A"},
		{90, "A"},
		{89.99999, "A"},
		{89.99996, "A"},
		{89.9999, "B"},
		{85.36, "B"},
		{8.536 / 10 * 100, "B"},
		{60, "D"},
		{0, "F"},
		{-5, "F"},
	}
	for _, tc := range cases {
		got, ok := ScoreToGrade(tc.pct, letters)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "percentage %v", tc.pct)
	}

	tenths := Scheme{{"high", 0.57}, {"low", 0}}
	pts := 5.7
	got, ok := ScoreToGrade(pts/10*100, tenths)
	require.True(t, ok)
	assert.Equal(t, "high", got)

	_, ok = ScoreToGrade(80, nil)
	assert.False(t, ok)
	_, ok = ScoreToGrade(math.NaN(), letters)
	assert.False(t, ok)
	_, ok = ScoreToGrade(math.Inf(1), letters)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, letters.Validate())
	assert.NoError(t, Scheme(nil).Validate())
	assert.Error(t, Scheme{{"A", 1.2}}.Validate())
	assert.Error(t, Scheme{{"A", 0.8}, {"B", 0.9}}.Validate())
	assert.Error(t, Scheme{{"A", 0.9}, {"a", 0.8}}.Validate())
	assert.Error(t, Scheme{{" ", 0.9}}.Validate())
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	s, err := FromJSON(gjson.Parse(`[["A", 0.9], ["B", 0.8]]`))
	require.NoError(t, err)
	assert.Equal(t, Scheme{{"A", 0.9}, {"B", 0.8}}, s)

	s, err = FromJSON(gjson.Parse(`[{"key": "4.0", "value": 0.9}, {"key": 3.0, "value": 0.8}]`))
	require.NoError(t, err)
	assert.Equal(t, Scheme{{"4.0", 0.9}, {"3.0", 0.8}}, s)

	s, err = FromJSON(gjson.Get(`{"gradingScheme": null}`, "gradingScheme"))
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = FromJSON(gjson.Get(`{}`, "gradingScheme"))
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = FromJSON(gjson.Parse(`{"A": 0.9}`))
	assert.Error(t, err)
	_, err = FromJSON(gjson.Parse(`[["A"]]`))
	assert.Error(t, err)
	_, err = FromJSON(gjson.Parse(`[["A", "high"]]`))
	assert.Error(t, err)
}
