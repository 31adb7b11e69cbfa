// Package bundle decodes sentence documents authored as JSON, JSONC, YAML or
// TOML into validated phrase values.
//
// A bundle document is an object whose keys name sentences:
//
//	greeting:
//	  variations: ["Hello, {name}!", "Hi, {name}!"]
//	files:
//	  variations: ["{count}"]
//	  values:
//	    count:
//	      one: ["{count} file"]
//	      default: ["{count} files"]
//
//	b, err := bundle.Decode(data, bundle.FormatFromExtension("en.yaml"))
//	if err != nil {
//		return err
//	}
//	r, err := phrase.New(phrase.WithBundle(b))
//
// Every entry is checked with the validator package before conversion, so a
// malformed sentence fails the whole decode with ErrInvalidSentence and the
// offending key. YAML mapping keys that are not strings (for example `1:`)
// become their decimal text.
//
// Additional formats are registered per decoder:
//
//	d, err := bundle.New(bundle.WithUnmarshalFunc("json5", json5.Unmarshal))
package bundle
