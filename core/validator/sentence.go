package validator

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/phrase/core/phrase"
)

const schemaURL = "sentence.schema.json"

//go:embed sentence.schema.json
var schemaJSON []byte

var sentenceSchema = compileSchema()

func compileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("validator: parsing sentence schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		panic(fmt.Sprintf("validator: loading sentence schema: %v", err))
	}
	return c.MustCompile(schemaURL)
}

var printer = message.NewPrinter(language.English)

// IsValidSentence reports whether candidate is a well-formed sentence.
func IsValidSentence(candidate any) bool {
	return ValidateSentence(candidate) == nil
}

// ValidateSentence checks candidate against the sentence schema and returns
// ValidationErrors listing every violation, or nil.
//
// Accepted shapes are decoded documents (map[string]any, or map[any]any as
// produced by YAML decoders) and phrase.Sentence values.
func ValidateSentence(candidate any) error {
	var instance any
	switch s := candidate.(type) {
	case phrase.Sentence:
		instance = sentenceDocument(s)
	case *phrase.Sentence:
		if s == nil {
			return ValidationErrors{{Message: "sentence must be an object"}}
		}
		instance = sentenceDocument(*s)
	default:
		instance = jsonValue(candidate)
	}

	err := sentenceSchema.Validate(instance)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return ValidationErrors{{Message: err.Error()}}
	}

	var errs ValidationErrors
	collect(verr, &errs)
	slices.SortStableFunc(errs, func(a, b ValidationError) int {
		return strings.Compare(a.Field, b.Field)
	})
	return errs
}

// collect flattens the leaves of the schema error tree.
func collect(verr *jsonschema.ValidationError, errs *ValidationErrors) {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			collect(cause, errs)
		}
		return
	}

	field := fieldPath(verr.InstanceLocation)
	switch k := verr.ErrorKind.(type) {
	case *kind.Required:
		for _, name := range k.Missing {
			errs.Add(ValidationError{Field: joinField(field, name), Message: "is required"})
		}
	case *kind.MinItems:
		msg := "must contain at least one phrase"
		if field == "variations" {
			msg = "must contain at least one variation"
		}
		errs.Add(ValidationError{Field: field, Message: msg})
	case *kind.Pattern:
		errs.Add(ValidationError{Field: field, Message: "has unbalanced or malformed placeholder braces"})
	case *kind.Type:
		errs.Add(ValidationError{Field: field, Message: typeMessage(field, k.Want)})
	case *kind.InvalidJsonValue:
		errs.Add(ValidationError{Field: field, Message: fmt.Sprintf("has unsupported value of type %T", k.Value)})
	default:
		errs.Add(ValidationError{Field: field, Message: verr.ErrorKind.LocalizedString(printer)})
	}
}

func typeMessage(field string, want []string) string {
	switch {
	case field == "":
		return "sentence must be an object"
	case slices.Contains(want, "array"):
		return "must be an array of strings"
	case slices.Contains(want, "object"):
		return "must be an object"
	default:
		return "must be a string"
	}
}

// fieldPath renders an instance location: array indexes are bracketed, so
// ["values", "n", "few", "1"] becomes "values.n.few[1]".
func fieldPath(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	// Depth at which array indexes appear under each top-level property.
	indexAt := map[string]int{"variations": 1, "values": 3}
	var b strings.Builder
	for i, tok := range loc {
		switch {
		case i == 0:
			b.WriteString(tok)
		case indexAt[loc[0]] == i:
			b.WriteString("[" + tok + "]")
		default:
			b.WriteString("." + tok)
		}
	}
	return b.String()
}

func joinField(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// sentenceDocument renders s in the decoded document shape. A nil value
// template becomes null so it is reported rather than skipped.
func sentenceDocument(s phrase.Sentence) map[string]any {
	doc := map[string]any{
		"variations": stringsToAny(s.Variations),
	}
	if s.Description != "" {
		doc["description"] = s.Description
	}
	if s.Values == nil {
		return doc
	}
	values := make(map[string]any, len(s.Values))
	for name, tmpl := range s.Values {
		if tmpl == nil {
			values[name] = nil
			continue
		}
		categories := make(map[string]any, len(tmpl))
		for category, phrases := range tmpl {
			categories[category] = stringsToAny(phrases)
		}
		values[name] = categories
	}
	doc["values"] = values
	return doc
}

// jsonValue rewrites decoder output into the value types the schema engine
// understands: map[any]any keys become their decimal text and []string
// becomes []any.
func jsonValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = jsonValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[fmt.Sprint(k)] = jsonValue(val)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, val := range node {
			out[i] = jsonValue(val)
		}
		return out
	case []string:
		return stringsToAny(node)
	}
	return v
}

func stringsToAny(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}
