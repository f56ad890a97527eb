package gallery

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Region is a print region code used in filenames, with the language cards
// from that region are printed in.
type Region struct {
	Code     string
	Name     string
	Language language.Tag
}

// LanguageName returns the English name of the region's print language.
func (r Region) LanguageName() string {
	return display.English.Tags().Name(r.Language)
}

// NativeLanguageName returns the print language's name in that language.
func (r Region) NativeLanguageName() string {
	return display.Self.Name(r.Language)
}

var regions = []Region{
	{Code: "EN", Name: "Worldwide English", Language: language.English},
	{Code: "NA", Name: "North American English", Language: language.AmericanEnglish},
	{Code: "EU", Name: "European English", Language: language.BritishEnglish},
	{Code: "AU", Name: "Oceanic English", Language: language.MustParse("en-AU")},
	{Code: "FR", Name: "French", Language: language.French},
	{Code: "FC", Name: "French-Canadian", Language: language.CanadianFrench},
	{Code: "DE", Name: "German", Language: language.German},
	{Code: "IT", Name: "Italian", Language: language.Italian},
	{Code: "PT", Name: "Portuguese", Language: language.EuropeanPortuguese},
	{Code: "SP", Name: "Spanish", Language: language.EuropeanSpanish},
	{Code: "JP", Name: "Japanese", Language: language.Japanese},
	{Code: "JA", Name: "Japanese-Asian", Language: language.Japanese},
	{Code: "AE", Name: "Asian-English", Language: language.English},
	{Code: "TC", Name: "Traditional Chinese", Language: language.TraditionalChinese},
	{Code: "SC", Name: "Simplified Chinese", Language: language.SimplifiedChinese},
	{Code: "KR", Name: "Korean", Language: language.Korean},
}

var regionsByCode = func() map[string]Region {
	out := make(map[string]Region, len(regions))
	for _, r := range regions {
		out[r.Code] = r
	}
	return out
}()

// LookupRegion finds a region by its filename code. Codes are matched
// exactly as written in filenames (upper case).
func LookupRegion(code string) (Region, bool) {
	r, ok := regionsByCode[strings.TrimSpace(code)]
	return r, ok
}

// Regions returns the known regions in display order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}
