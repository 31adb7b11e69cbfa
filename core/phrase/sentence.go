package phrase

// Sentence is a template unit: candidate variation strings with {name}
// placeholders plus optional per-placeholder value templates.
type Sentence struct {
	Description string                   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Variations  []string                 `json:"variations" yaml:"variations" toml:"variations"`
	Values      map[string]ValueTemplate `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

// ValueTemplate maps a category key (a literal value such as "two", a plural
// category such as "few", or the default key) to candidate phrases.
type ValueTemplate map[string][]string

// Bundle maps lookup keys to sentences.
type Bundle map[string]Sentence

// Lookup resolves the phrase list for key. A key present in the template
// wins even when its list is empty; an absent key falls back to defaultKey.
// The second result is false when neither key is present.
func (t ValueTemplate) Lookup(key, defaultKey string) ([]string, bool) {
	if items, ok := t[key]; ok {
		return items, true
	}
	if items, ok := t[defaultKey]; ok {
		return items, true
	}
	return nil, false
}

// valueTemplate returns the template registered for a placeholder name.
func (s Sentence) valueTemplate(name string) (ValueTemplate, bool) {
	if s.Values == nil {
		return nil, false
	}
	tmpl, ok := s.Values[name]
	if !ok || tmpl == nil {
		return nil, false
	}
	return tmpl, true
}
