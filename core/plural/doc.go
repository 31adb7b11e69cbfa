// Package plural provides number-to-category functions used to select
// value-template phrases.
//
// Two strategies are available. Numeric is locale-unaware and returns the
// number's own decimal form, so a template keyed "1" matches exactly 1.
// ForLocale and ForTag return CLDR cardinal rules backed by
// golang.org/x/text/feature/plural:
//
//	ru, err := plural.ForLocale("ru-RU")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ru(1)  // "one"
//	ru(3)  // "few"
//	ru(5)  // "many"
//	ru(21) // "one"
//
//	plural.Numeric(7) // "7"
//
// A Func is a plain function value, so resolvers bound to different locales
// coexist without shared state and are safe for concurrent use.
package plural
