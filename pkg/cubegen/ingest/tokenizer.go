package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/cubegen/pkg/cubegen/lexicon"
)

// Tokenizer handles text tokenization and translation to canonical keywords
type Tokenizer struct {
	lexicon *lexicon.Lexicon // Optional: for Russian→English translation
}

// NewTokenizer creates a tokenizer translating through lex. A nil lexicon
// leaves tokens untranslated.
func NewTokenizer(lex *lexicon.Lexicon) *Tokenizer {
	return &Tokenizer{lexicon: lex}
}

// SetLexicon assigns a lexicon for translation.
// Example: "гранитная" → "granite", "тёмный" → "dark"
func (t *Tokenizer) SetLexicon(lex *lexicon.Lexicon) {
	t.lexicon = lex
}

// Lexicon returns the lexicon in use, which may be nil.
func (t *Tokenizer) Lexicon() *lexicon.Lexicon {
	return t.lexicon
}

// Tokenize splits text into normalized tokens and translates each one.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := t.Split(text)
	for i, tok := range tokens {
		tokens[i] = t.Translate(tok)
	}
	return tokens
}

// Split lower-cases text, deletes every rune that is not an ASCII word
// character, a Cyrillic letter or whitespace, splits on whitespace and drops
// tokens of one rune or less. No translation happens here.
func (t *Tokenizer) Split(text string) []string {
	text = normalize(text)

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if utf8.RuneCountInString(word) <= 1 {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isWordRune(r):
			current.WriteRune(r)
		}
		// Anything else (punctuation, symbols, other scripts) is dropped
		// without splitting: "stone,wall" becomes "stonewall".
	}
	flush()

	return tokens
}

// Translate maps a single token through the lexicon, if any.
func (t *Tokenizer) Translate(token string) string {
	if t.lexicon == nil {
		return token
	}
	return t.lexicon.Translate(token)
}

// normalize composes combining marks, lower-cases and folds ё to е.
func normalize(text string) string {
	text = norm.NFC.String(text)
	text = cases.Lower(language.Und).String(text)
	return strings.ReplaceAll(text, "ё", "е")
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case unicode.Is(unicode.Cyrillic, r) && unicode.IsLetter(r):
		return true
	}
	return false
}
