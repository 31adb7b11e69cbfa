package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phrase/core/phrase"
	"github.com/dmitrymomot/phrase/core/validator"
)

func variations(items ...string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}

func TestIsValidSentence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate any
		valid     bool
	}{
		{
			name:      "multiple variants",
			candidate: map[string]any{"variations": variations("Test phrase 1", "Test phrase 2", "Test phrase 3")},
			valid:     true,
		},
		{
			name:      "single variant",
			candidate: map[string]any{"variations": variations("Test phrase 1")},
			valid:     true,
		},
		{
			name:      "multiple templates and replacement value",
			candidate: map[string]any{"variations": variations("Test phrase {value}", "Test phrase {value}")},
			valid:     true,
		},
		{
			name: "default value",
			candidate: map[string]any{
				"values":     map[string]any{"value": map[string]any{"default": variations("value")}},
				"variations": variations("Test phrase {value}"),
			},
			valid: true,
		},
		{
			name: "default value template",
			candidate: map[string]any{
				"values":     map[string]any{"value": map[string]any{"default": variations("value {value}")}},
				"variations": variations("Test phrase {value}"),
			},
			valid: true,
		},
		{
			name: "value mapping template replacement",
			candidate: map[string]any{
				"values": map[string]any{"value": map[string]any{
					"one":   variations("uno - {value}"),
					"two":   variations("dos - {value}"),
					"three": variations("treas - {value}"),
				}},
				"variations": variations("Test phrase {value}"),
			},
			valid: true,
		},
		{
			name: "new value template in value template",
			candidate: map[string]any{
				"values": map[string]any{
					"parent": map[string]any{"default": variations("{parent} has {son}")},
					"son":    map[string]any{"default": variations("son {son}")},
				},
				"variations": variations("Let say {parent}"),
			},
			valid: true,
		},
		{
			name:      "only template in variations",
			candidate: map[string]any{"variations": variations("{parent}")},
			valid:     true,
		},
		{
			name:      "multiple templates in variations",
			candidate: map[string]any{"variations": variations("{parent}{parent}{parent}")},
			valid:     true,
		},
		{
			name:      "empty variation string",
			candidate: map[string]any{"variations": variations("")},
			valid:     true,
		},
		{
			name:      "description",
			candidate: map[string]any{"description": "greeting", "variations": variations("hi")},
			valid:     true,
		},
		{
			name:      "yaml style maps",
			candidate: map[any]any{"variations": variations("{n}"), "values": map[any]any{"n": map[any]any{1: variations("one")}}},
			valid:     true,
		},
		{
			name:      "no variants",
			candidate: map[string]any{"variations": variations()},
			valid:     false,
		},
		{
			name:      "missing variations",
			candidate: map[string]any{"description": "nothing"},
			valid:     false,
		},
		{
			name: "empty value template list",
			candidate: map[string]any{
				"values":     map[string]any{"value": map[string]any{"default": variations()}},
				"variations": variations("test"),
			},
			valid: false,
		},
		{name: "non closed bracket", candidate: map[string]any{"variations": variations("{test")}, valid: false},
		{name: "non opening bracket", candidate: map[string]any{"variations": variations("test}")}, valid: false},
		{name: "double opening bracket", candidate: map[string]any{"variations": variations("{{test}")}, valid: false},
		{name: "double closing bracket", candidate: map[string]any{"variations": variations("{test}}")}, valid: false},
		{name: "double brackets", candidate: map[string]any{"variations": variations("{{test}}")}, valid: false},
		{name: "empty placeholder", candidate: map[string]any{"variations": variations("{}")}, valid: false},
		{name: "invalid placeholder name", candidate: map[string]any{"variations": variations("{a b}")}, valid: false},
		{
			name: "malformed phrase",
			candidate: map[string]any{
				"values":     map[string]any{"value": map[string]any{"default": variations("{value")}},
				"variations": variations("{value}"),
			},
			valid: false,
		},
		{name: "variations not an array", candidate: map[string]any{"variations": "text"}, valid: false},
		{name: "variation not a string", candidate: map[string]any{"variations": []any{1}}, valid: false},
		{name: "description not a string", candidate: map[string]any{"description": 1, "variations": variations("x")}, valid: false},
		{name: "values not an object", candidate: map[string]any{"values": "x", "variations": variations("x")}, valid: false},
		{name: "not an object", candidate: "sentence", valid: false},
		{name: "nil", candidate: nil, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validator.IsValidSentence(tt.candidate))
		})
	}
}

func TestValidateTypedSentence(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		s := phrase.Sentence{
			Variations: []string{"Let print {number}"},
			Values: map[string]phrase.ValueTemplate{
				"number": {"1": {"{number} as one"}, "default": {"{number} as others"}},
			},
		}
		assert.NoError(t, validator.ValidateSentence(s))
		assert.True(t, validator.IsValidSentence(&s))
	})

	t.Run("invalid", func(t *testing.T) {
		s := phrase.Sentence{
			Values: map[string]phrase.ValueTemplate{
				"a": nil,
				"b": {"default": {}},
				"c": {"one": {"ok", "{bad"}},
			},
		}
		err := validator.ValidateSentence(s)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 4)
		assert.True(t, verrs.Has("variations"))
		assert.True(t, verrs.Has("values.a"))
		assert.True(t, verrs.Has("values.b.default"))
		assert.True(t, verrs.Has("values.c.one[1]"))
	})

	t.Run("nil pointer", func(t *testing.T) {
		var s *phrase.Sentence
		assert.False(t, validator.IsValidSentence(s))
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"variations": []any{"ok", "{broken", 3},
		"values": map[string]any{
			"n": map[string]any{"few": []any{"fine", 7}, "many": "nope"},
		},
	}

	err := validator.ValidateSentence(doc)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.False(t, verrs.IsEmpty())
	assert.Len(t, verrs, 4)
	assert.True(t, verrs.Has("variations[1]"))
	assert.True(t, verrs.Has("variations[2]"))
	assert.True(t, verrs.Has("values.n.few[1]"))
	assert.True(t, verrs.Has("values.n.many"))
	assert.False(t, verrs.Has("variations[0]"))

	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "variations[1]: has unbalanced or malformed placeholder braces")

	wrapped := fmt.Errorf("loading: %w", err)
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 4)
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sentence must be an object", validator.ValidationError{Message: "sentence must be an object"}.Error())
	assert.Equal(t, "variations: is required", validator.ValidationError{Field: "variations", Message: "is required"}.Error())
}

func TestValidationErrorFields(t *testing.T) {
	t.Parallel()

	doc := map[any]any{
		"description": 5,
		"values": map[any]any{
			"n": map[any]any{
				1:     []string{"{n"},
				"few": []any{},
			},
			"m": nil,
		},
	}

	want := validator.ValidationErrors{
		{Field: "description", Message: "must be a string"},
		{Field: "values.m", Message: "must be an object"},
		{Field: "values.n.1[0]", Message: "has unbalanced or malformed placeholder braces"},
		{Field: "values.n.few", Message: "must contain at least one phrase"},
		{Field: "variations", Message: "is required"},
	}
	assert.Equal(t, want, validator.ExtractValidationErrors(validator.ValidateSentence(doc)))

	t.Run("root", func(t *testing.T) {
		want := validator.ValidationErrors{{Message: "sentence must be an object"}}
		assert.Equal(t, want, validator.ExtractValidationErrors(validator.ValidateSentence([]any{"x"})))
	})
}
