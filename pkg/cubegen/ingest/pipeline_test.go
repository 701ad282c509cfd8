package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cognicore/cubegen/pkg/cubegen/lexicon"
)

func newTestPipeline() *Pipeline {
	return NewPipeline(NewTokenizer(lexicon.Builtin()), BuiltinPhraseParser())
}

func TestPipelineBilingualEquivalence(t *testing.T) {
	p := newTestPipeline()

	en := p.Process("weathered granite, vertical")
	ru := p.Process("Выветренный гранит, вертикальный")
	assert.Equal(t, en, ru)
	assert.Equal(t, []string{"weathered", "granite", "vertical"}, en)
}

func TestPipelinePhraseBeforeTranslation(t *testing.T) {
	p := newTestPipeline()

	// Word by word this would be "red wood"
	assert.Equal(t, []string{"polished", "mahogany"}, p.Process("полированное красное дерево"))
}

func TestPipelineWithoutParser(t *testing.T) {
	p := NewPipeline(NewTokenizer(lexicon.Builtin()), nil)

	assert.Equal(t, []string{"red", "wood"}, p.Process("красное дерево"))
}

func TestPipelineEmptyText(t *testing.T) {
	p := newTestPipeline()

	assert.Empty(t, p.Process(""))
	assert.Empty(t, p.TokenSet(""))
}

func TestPipelineTokenSet(t *testing.T) {
	p := newTestPipeline()

	set := p.TokenSet("stone stone камень wall")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "stone")
	assert.Contains(t, set, "wall")
}
