package ingest

// Pipeline orchestrates the prompt normalisation flow:
// text → tokenization → multi-token recognition → translation
type Pipeline struct {
	tokenizer *Tokenizer
	parser    *PhraseParser
}

// NewPipeline creates a pipeline with the given components. A nil parser
// skips phrase recognition.
func NewPipeline(tokenizer *Tokenizer, parser *PhraseParser) *Pipeline {
	return &Pipeline{
		tokenizer: tokenizer,
		parser:    parser,
	}
}

// Process turns a prompt into canonical English keywords.
func (p *Pipeline) Process(text string) []string {
	// 1. Split (lower-case, strip punctuation, drop one-rune tokens)
	tokens := p.tokenizer.Split(text)

	// 2. Multi-token recognition (greedy longest match)
	if p.parser != nil {
		tokens = p.parser.Parse(tokens)
	}

	// 3. Russian → English
	for i, tok := range tokens {
		tokens[i] = p.tokenizer.Translate(tok)
	}
	return tokens
}

// TokenSet returns the distinct keywords of text, for similarity scoring.
func (p *Pipeline) TokenSet(text string) map[string]struct{} {
	tokens := p.Process(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
