// Package validator checks sentence documents against the sentence schema
// before they are trusted by a resolver.
//
// The resolver never validates its input; callers that accept sentences from
// outside the program run them through this package first:
//
//	var doc map[string]any
//	if err := json.Unmarshal(data, &doc); err != nil {
//		return err
//	}
//	if !validator.IsValidSentence(doc) {
//		return errors.New("malformed sentence")
//	}
//
// # Rules
//
// The rules live in the embedded JSON Schema sentence.schema.json (draft
// 2020-12), compiled once with santhosh-tekuri/jsonschema:
//
//   - variations is required and holds at least one string;
//   - every variation and every value phrase is literal text with balanced
//     {name} placeholders, where name matches [A-Za-z0-9_-]+ (no unclosed,
//     unopened, doubled or nested braces; an empty string is fine);
//   - description, when present, is a string;
//   - values, when present, maps placeholder names to objects whose entries
//     are non-empty arrays of strings.
//
// # Error Reporting
//
// ValidateSentence returns ValidationErrors listing every violation with a
// field path, sorted by field. Schema instance locations are rendered with
// bracketed indexes ("values.count.one[0]"):
//
//	if err := validator.ValidateSentence(doc); err != nil {
//		for _, fieldErr := range validator.ExtractValidationErrors(err) {
//			fmt.Printf("%s: %s\n", fieldErr.Field, fieldErr.Message)
//		}
//	}
package validator
