// Package phrase renders sentence templates: a sentence holds several
// interchangeable variation strings with {name} placeholders, and optional
// value templates that pick a phrase per placeholder by value or plural
// category.
//
// # Basic Usage
//
//	r, err := phrase.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	greeting := phrase.Sentence{
//		Variations: []string{"Hello, {name}!", "Hi, {name}!"},
//	}
//	text, _ := r.Render(greeting, phrase.Params{"name": phrase.String("Ann")})
//	// "Hello, Ann!" or "Hi, Ann!"
//
// One variation is chosen at random, then placeholders are replaced left to
// right. Each substitution restarts the scan from the beginning of the text,
// so placeholders introduced by a phrase are resolved too.
//
// # Value Templates
//
// A value template maps a category key to candidate phrases. Strings and
// booleans select the key equal to their text; numbers select by plural
// category; missing values select the default key ("default"). A phrase may
// contain its own placeholder to embed the raw value:
//
//	files := phrase.Sentence{
//		Variations: []string{"Found {count}"},
//		Values: map[string]phrase.ValueTemplate{
//			"count": {
//				"one":     {"{count} file"},
//				"default": {"{count} files"},
//			},
//		},
//	}
//
// With WithICU(true) numbers map to CLDR categories of the configured locale
// ("one", "few", "many", ...). Without it a number selects the key equal to
// its decimal form, so the template above would need a "1" key.
//
// A key absent from the template falls back to the default key. When neither
// is present, or the chosen list is empty, the placeholder becomes the empty
// value. Rendering never fails because of missing params.
//
// # Params
//
// Params is a map of tagged values built with String, Number, Int, Bool and
// Lazy. Lazy functions run only if their placeholder is reached, and at most
// once per render. M converts dynamic maps:
//
//	r.Render(files, phrase.M{"count": 3}.Params())
//
// # Bundles
//
// With WithBundle, RenderKey and T look sentences up by key. Render and
// RenderKey report errors; Text and T log them and return the empty value.
//
// # Termination
//
// A value template whose phrase reintroduces its own placeholder can loop
// forever. Each render stops after DefaultMaxSubstitutions substitutions
// (see WithMaxSubstitutions) and fails with ErrSubstitutionLimit.
//
// # Thread Safety
//
// A Resolver is immutable after New. Concurrent renders are safe as long as
// the chooser, the category func and any lazy params are.
package phrase
