package locale

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Default is the locale used when none is configured.
const Default = "en-US"

// ProbeInstant is the fixed instant whose month is rendered by HasSupport.
// It falls on 11 January 1970 in every time zone.
var ProbeInstant = time.UnixMilli(9e8).UTC()

var (
	ErrEmptyLocale       = errors.New("locale cannot be empty")
	ErrUnsupportedLocale = errors.New("locale has no calendar data")
)

// calendars indexes monday locales by full identifier ("pt_BR") and by base
// language ("pt"); a base maps to the first listed locale of that language.
var calendars = indexCalendars()

func indexCalendars() map[string]monday.Locale {
	index := make(map[string]monday.Locale)
	for _, loc := range monday.ListLocales() {
		if len(monday.GetLongMonths(loc)) != 12 {
			continue
		}
		index[string(loc)] = loc
		base, _, _ := strings.Cut(string(loc), "_")
		if _, ok := index[base]; !ok {
			index[base] = loc
		}
	}
	return index
}

// Parse parses a BCP 47 locale such as "en-US" or "ru_RU".
func Parse(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und, ErrEmptyLocale
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return tag, nil
}

// MonthName returns the stand-alone long name of month m in the given locale.
// The region picks the calendar variant when one exists ("pt-PT" vs "pt-BR");
// otherwise the likely region of the language is used. Capitalization follows
// the calendar data and may differ from CLDR ("Январь" rather than "январь").
func MonthName(locale string, m time.Month) (string, error) {
	tag, err := Parse(locale)
	if err != nil {
		return "", err
	}
	if m < time.January || m > time.December {
		return "", fmt.Errorf("month out of range: %d", m)
	}

	cal, ok := calendarFor(tag)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return monday.GetLongMonths(cal)[m-1], nil
}

func calendarFor(tag language.Tag) (monday.Locale, bool) {
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	region, _ := tag.Region()
	if cal, ok := calendars[base.String()+"_"+region.String()]; ok {
		return cal, true
	}
	cal, ok := calendars[base.String()]
	return cal, ok
}

// HasSupport reports whether calendar data for locale renders the month of
// ProbeInstant as expected. Callers pass the name they expect ("January" for
// en, "январь" for ru); the comparison ignores case. It never panics and
// returns false on any failure.
func HasSupport(locale, expected string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	name, err := MonthName(locale, ProbeInstant.Month())
	if err != nil {
		return false
	}
	return strings.EqualFold(name, expected)
}

// Supported returns the base languages that have calendar data, sorted.
func Supported() []string {
	langs := make([]string, 0, len(calendars))
	for key := range calendars {
		if !strings.Contains(key, "_") {
			langs = append(langs, key)
		}
	}
	slices.Sort(langs)
	return langs
}
