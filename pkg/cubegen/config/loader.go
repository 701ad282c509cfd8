package config

import (
	"fmt"

	"github.com/cognicore/cubegen/pkg/cubegen/ingest"
	"github.com/cognicore/cubegen/pkg/cubegen/lexicon"
)

// Loader loads dictionary files and constructs the prompt pipeline
type Loader struct {
	LexiconPath string
	PhrasesPath string
}

// Components holds the loaded prompt-processing components
type Components struct {
	Tokenizer *ingest.Tokenizer
	Parser    *ingest.PhraseParser
	Pipeline  *ingest.Pipeline
}

// Load reads the configured files on top of the built-in dictionaries
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Lexicon: built-in vocabulary plus optional extra groups
	lex := lexicon.Builtin()
	if l.LexiconPath != "" {
		if err := lex.MergeYAML(l.LexiconPath); err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
	}
	comp.Tokenizer = ingest.NewTokenizer(lex)

	// Phrases: built-in compounds plus the dictionary file
	var extra []ingest.PhraseEntry
	if l.PhrasesPath != "" {
		dict, err := LoadDict(l.PhrasesPath)
		if err != nil {
			return nil, fmt.Errorf("load phrases: %w", err)
		}
		extra = make([]ingest.PhraseEntry, len(dict.Entries))
		for i, e := range dict.Entries {
			extra[i] = ingest.PhraseEntry{
				Canonical: e.Canonical,
				Variants:  e.Variants,
				Category:  e.Category,
			}
		}
	}
	comp.Parser = ingest.BuiltinPhraseParser(extra...)

	comp.Pipeline = ingest.NewPipeline(comp.Tokenizer, comp.Parser)
	return comp, nil
}
