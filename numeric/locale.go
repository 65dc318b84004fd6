package numeric

import (
	"golang.org/x/text/language"
)

// separator conventions, index-aligned with localeTags
var localeParsers = []Parser{
	Default,
	{Decimal: ",", Thousands: "."},
	{Decimal: ",", Thousands: "\u00a0"},
	{Decimal: ",", Thousands: "."},
	{Decimal: ",", Thousands: "."},
	{Decimal: ",", Thousands: "."},
	{Decimal: ",", Thousands: "."},
	{Decimal: ",", Thousands: "\u00a0"},
	{Decimal: ",", Thousands: "\u00a0"},
	{Decimal: ",", Thousands: "\u00a0"},
	{Decimal: ".", Thousands: "’"},
	Default,
	Default,
	Default,
	{Decimal: "٫", Thousands: "٬"},
}

var localeTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Portuguese,
	language.Russian,
	language.Polish,
	language.Swedish,
	language.MustParse("de-CH"),
	language.Hindi,
	language.Japanese,
	language.Chinese,
	language.Arabic,
}

var localeMatcher = language.NewMatcher(localeTags)

//
// ForLocale returns the parser for the separator convention of
// the given BCP 47 tag (e.g. "de", "fr-CA", "en-AU").
// Blank, malformed or unsupported tags get the Default parser.
//
func ForLocale(tag string) Parser {
	if tag == "" {
		return Default
	}
	t, err := language.Parse(tag)
	if err != nil {
		return Default
	}
	_, idx, conf := localeMatcher.Match(t)
	if conf == language.No || idx < 0 || idx >= len(localeParsers) {
		return Default
	}
	return localeParsers[idx]
}
