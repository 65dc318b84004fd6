package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Default(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"8", 8, true},
		{" 8.34 ", 8.34, true},
		{"-3", -3, true},
		{".5", 0.5, true},
		{"1,234.5", 1234.5, true},
		{"1e3", 1000, true},
		{"1e-400", 0, true},
		{"1e400", 0, false},
		{"8.123456789", 8.123456789, true},
		{"", 0, false},
		{"B", 0, false},
		{"85%", 0, false},
		{".", 0, false},
		{"8..3", 0, false},
		{"E X", 0, false},
	}
	for _, tc := range cases {
		got, ok := Default.Parse(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestParse_LocaleSeparators(t *testing.T) {
	t.Parallel()

	de := ForLocale("de")
	v, ok := de.Parse("1.234,5")
	assert.True(t, ok)
	assert.Equal(t, 1234.5, v)

	v, ok = de.Parse("8,5")
	assert.True(t, ok)
	assert.Equal(t, 8.5, v)

	fr := ForLocale("fr")
	v, ok = fr.Parse("1\u00a0234,25")
	assert.True(t, ok)
	assert.Equal(t, 1234.25, v)

	// falls back to the default separators
	v, ok = fr.Parse("8.5")
	assert.True(t, ok)
	assert.Equal(t, 8.5, v)
}

func TestForLocale_UnknownTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Default, ForLocale(""))
	assert.Equal(t, Default, ForLocale("not a tag!!"))
	assert.Equal(t, Default, ForLocale("en-AU"))
	assert.Equal(t, Parser{Decimal: ",", Thousands: "."}, ForLocale("de-AT"))
}

func TestStripPercent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"83.35%", "83.35％", "83.35﹪", "83.35٪"} {
		assert.Equal(t, "83.35", StripPercent(in), in)
	}
	assert.Equal(t, "83%", StripPercent("8%3%"))
	assert.Equal(t, "83", StripPercent("83"))
}

func TestPrecisionOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PrecisionOf(8))
	assert.Equal(t, 2, PrecisionOf(8.34))
	assert.Equal(t, 9, PrecisionOf(83.123456789))
	a, b := 0.1, 0.2
	assert.Equal(t, MaxPrecision, PrecisionOf(a+b))
}

func TestRound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8.3543, Round(83.543/100*10, 5))
	assert.Equal(t, 0.83, Round(8.3/100*10, 3))
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.Equal(t, -3.0, Round(-2.5, 0))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "8", Format(8))
	assert.Equal(t, "8.34", Format(8.34))
	assert.Equal(t, "0", Format(0))
	assert.Equal(t, "0", Format(math.Copysign(0, -1)))
	assert.Equal(t, "0.8123456789", Format(0.8123456789))
}
