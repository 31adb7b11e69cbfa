package plural

import (
	"math"
	"strconv"
	"strings"

	xplural "golang.org/x/text/feature/plural"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/phrase/core/locale"
)

// Func maps a number to the category key used to pick a phrase list.
// It follows Unicode CLDR (Common Locale Data Repository) cardinal rules when
// built with ForLocale or ForTag.
type Func func(n float64) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	Zero  = "zero"  // Used for 0 in some languages
	One   = "one"   // Singular form
	Two   = "two"   // Dual form (used in Arabic, Hebrew, etc.)
	Few   = "few"   // Paucal form (used in Slavic languages, etc.)
	Many  = "many"  // Used for larger quantities in some languages
	Other = "other" // Default/catch-all form
)

// Numeric is the locale-unaware fallback: the category is the number's own
// decimal form, so every distinct number selects its own key ("1", "2.5").
var Numeric Func = FormatNumber

// FormatNumber renders n in its shortest decimal form. Negative zero renders
// as "0" and infinities as "Infinity" and "-Infinity".
func FormatNumber(n float64) string {
	switch {
	case n == 0:
		return "0"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ForLocale returns the CLDR cardinal rule for a BCP 47 locale such as
// "en-US", "ru-RU" or "ru_RU".
func ForLocale(loc string) (Func, error) {
	tag, err := locale.Parse(loc)
	if err != nil {
		return nil, err
	}
	return ForTag(tag), nil
}

// ForTag returns the CLDR cardinal rule for the given language tag.
// Rules are looked up by base language ("ru-RU" uses "ru"), except for
// Portuguese outside Brazil which CLDR keeps separate.
// Languages without CLDR data resolve every number to Other.
func ForTag(tag language.Tag) Func {
	tag = ruleTag(tag)
	return func(n float64) string {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Other
		}
		i, v, w, f, t := operands(n)
		return formName(xplural.Cardinal.MatchPlural(tag, i, v, w, f, t))
	}
}

// Categories returns which categories a rule actually produces over a set of
// representative numbers, in CLDR order. Useful to check that a value
// template covers every category a locale can select.
func Categories(fn Func) []string {
	forms := make(map[string]bool)

	samples := []float64{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 19, 20, 21, 22, 25, 100, 101, 102, 111, 1000, 1000000, 0.5, 1.5}
	for _, n := range samples {
		forms[fn(n)] = true
	}

	order := []string{Zero, One, Two, Few, Many, Other}
	result := make([]string, 0, len(order))
	for _, form := range order {
		if forms[form] {
			result = append(result, form)
		}
	}
	return result
}

// operands computes the CLDR plural operands of |n|:
// i integer digits, v visible fraction digit count, w the same without
// trailing zeros, f visible fraction digits, t the same without trailing zeros.
func operands(n float64) (i, v, w, f, t int) {
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")
	i = truncatedInt(intPart)

	if fracPart == "" {
		return i, 0, 0, 0, 0
	}
	v = len(fracPart)
	f = truncatedInt(fracPart)

	trimmed := strings.TrimRight(fracPart, "0")
	w = len(trimmed)
	if trimmed != "" {
		t = truncatedInt(trimmed)
	}
	return i, v, w, f, t
}

// truncatedInt parses a run of decimal digits. Runs too long for an int keep
// their low 17 digits behind a leading 1, which preserves every modulus the
// CLDR rules look at and keeps the value non-zero.
func truncatedInt(digits string) int {
	if len(digits) > 18 {
		digits = "1" + digits[len(digits)-17:]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func ruleTag(tag language.Tag) language.Tag {
	base, conf := tag.Base()
	if conf == language.No {
		return language.Und
	}
	if base.String() == "pt" {
		if region, _ := tag.Region(); region.String() != "BR" && region.String() != "ZZ" {
			return language.MustParse("pt-PT")
		}
	}
	return language.Make(base.String())
}

func formName(form xplural.Form) string {
	switch form {
	case xplural.Zero:
		return Zero
	case xplural.One:
		return One
	case xplural.Two:
		return Two
	case xplural.Few:
		return Few
	case xplural.Many:
		return Many
	default:
		return Other
	}
}
