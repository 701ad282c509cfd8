package ingest

import (
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen/lexicon"
)

// PhraseParser collapses multi-word phrases ("красное дерево", "stained
// glass") into a single canonical keyword before per-token translation.
type PhraseParser struct {
	dict   map[string]PhraseEntry // phrase → entry
	maxLen int
}

// PhraseEntry represents a dictionary entry for a multi-token phrase
type PhraseEntry struct {
	Canonical string
	Category  string
	Variants  []string
}

// builtinPhrases are Russian compounds whose words translate to something
// else one at a time ("красное" → red, "дерево" → wood).
var builtinPhrases = []PhraseEntry{
	{Canonical: "mahogany", Category: "material", Variants: []string{"красное дерево", "красного дерева"}},
	{Canonical: "ivory", Category: "material", Variants: []string{"слоновая кость", "слоновой кости"}},
	{Canonical: "sandstone", Category: "material", Variants: []string{"песчаный камень"}},
	{Canonical: "rust", Category: "material", Variants: []string{"ржавое железо", "ржавый металл"}},
}

// NewPhraseParser creates a new parser with the given dictionary
func NewPhraseParser(entries []PhraseEntry) *PhraseParser {
	dict := make(map[string]PhraseEntry)
	maxLen := 1
	for _, e := range entries {
		canonical := lexicon.Fold(e.Canonical)
		dict[canonical] = e
		if l := phraseLen(canonical); l > maxLen {
			maxLen = l
		}
		for _, v := range e.Variants {
			variant := lexicon.Fold(v)
			dict[variant] = e
			if l := phraseLen(variant); l > maxLen {
				maxLen = l
			}
		}
	}
	return &PhraseParser{dict: dict, maxLen: maxLen}
}

// BuiltinPhraseParser returns a parser over the built-in Russian compounds
// plus any extra entries.
func BuiltinPhraseParser(extra ...PhraseEntry) *PhraseParser {
	entries := make([]PhraseEntry, 0, len(builtinPhrases)+len(extra))
	entries = append(entries, builtinPhrases...)
	entries = append(entries, extra...)
	return NewPhraseParser(entries)
}

// Parse applies greedy longest-match to recognize multi-token phrases
func (p *PhraseParser) Parse(tokens []string) []string {
	var result []string
	i := 0

	for i < len(tokens) {
		matched := ""
		matchLen := 1

		// Try matching from longest phrase to shortest (bigram)
		maxPhrase := p.maxLen
		if remaining := len(tokens) - i; maxPhrase > remaining {
			maxPhrase = remaining
		}
		for n := maxPhrase; n >= 2; n-- {
			phrase := lexicon.Fold(strings.Join(tokens[i:i+n], " "))
			if entry, ok := p.dict[phrase]; ok {
				matched = entry.Canonical
				matchLen = n
				break
			}
		}

		if matched != "" {
			result = append(result, lexicon.Fold(matched))
			i += matchLen
			continue
		}

		// Single-token entries act as plain aliases
		if entry, ok := p.dict[lexicon.Fold(tokens[i])]; ok {
			result = append(result, lexicon.Fold(entry.Canonical))
		} else {
			result = append(result, tokens[i])
		}
		i++
	}

	return result
}

func phraseLen(phrase string) int {
	if phrase == "" {
		return 1
	}
	return len(strings.Fields(phrase))
}
