package lexicon

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon maps surface forms (Russian nouns, adjectives and their inflections)
// onto canonical English keywords understood by the rule tables.
//
// Design principles:
// - Bidirectional: can translate to canonical OR expand canonical to all forms
// - Additive: YAML files extend or replace the built-in groups
// - Forms are folded the same way the tokenizer folds input (lower case, ё→е)
type Lexicon struct {
	// canonical -> all forms (including canonical itself)
	// Example: "stone" -> ["stone", "камень", "каменный", ...]
	groups map[string][]string

	// form -> canonical
	// Example: "каменная" -> "stone"
	reverseIndex map[string]string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		groups:       make(map[string][]string),
		reverseIndex: make(map[string]string),
	}
}

// LoadFromYAML loads translation groups from a YAML file.
//
// Expected format:
//
//	translations:
//	  - canonical: stone
//	    forms: [камень, каменный, каменная]
//	  - canonical: granite
//	    forms: [гранит, гранитный]
func LoadFromYAML(path string) (*Lexicon, error) {
	lex := New()
	if err := lex.MergeYAML(path); err != nil {
		return nil, err
	}
	return lex, nil
}

// MergeYAML adds the translation groups in path to l. Groups whose canonical
// already exists are replaced.
func (l *Lexicon) MergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var config struct {
		Translations []struct {
			Canonical string   `yaml:"canonical"`
			Forms     []string `yaml:"forms"`
		} `yaml:"translations"`
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return err
	}

	for _, entry := range config.Translations {
		if strings.TrimSpace(entry.Canonical) == "" {
			continue
		}
		l.AddGroup(entry.Canonical, entry.Forms)
	}
	return nil
}

// AddGroup adds a translation group with a canonical keyword and its forms.
// The canonical keyword is always the first entry of the group.
// If the group already exists, old reverse index entries are cleaned up first.
func (l *Lexicon) AddGroup(canonical string, forms []string) {
	canonical = Fold(canonical)

	if old, exists := l.groups[canonical]; exists {
		for _, f := range old {
			delete(l.reverseIndex, f)
		}
	}

	normalized := make([]string, 0, len(forms)+1)
	seen := make(map[string]bool)

	normalized = append(normalized, canonical)
	seen[canonical] = true

	for _, f := range forms {
		f = Fold(f)
		if f == "" || seen[f] {
			continue
		}
		normalized = append(normalized, f)
		seen[f] = true
	}

	l.groups[canonical] = normalized
	for _, f := range normalized {
		l.reverseIndex[f] = canonical
	}
}

// Translate returns the canonical keyword for token.
// If the token is not in the lexicon, returns the token itself.
//
// Examples:
//   - Translate("гранитная") -> "granite"
//   - Translate("granite") -> "granite"
//   - Translate("unknown") -> "unknown"
func (l *Lexicon) Translate(token string) string {
	token = Fold(token)
	if canonical, ok := l.reverseIndex[token]; ok {
		return canonical
	}
	return token
}

// Forms returns all known forms of a token (including the canonical keyword).
// If the token is not in the lexicon, returns a slice containing only the token.
func (l *Lexicon) Forms(token string) []string {
	token = Fold(token)
	if canonical, ok := l.reverseIndex[token]; ok {
		return l.groups[canonical]
	}
	return []string{token}
}

// Has reports whether token is a known form.
func (l *Lexicon) Has(token string) bool {
	_, ok := l.reverseIndex[Fold(token)]
	return ok
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() Stats {
	total := 0
	for _, forms := range l.groups {
		total += len(forms)
	}
	return Stats{
		Groups:     len(l.groups),
		TotalForms: total,
	}
}

// Stats holds statistics about lexicon contents.
type Stats struct {
	Groups     int // Number of canonical keywords
	TotalForms int // Forms across all groups, canonicals included
}

// Fold lower-cases s and replaces ё with е so that both spellings match.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "ё", "е")
}
