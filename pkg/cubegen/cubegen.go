// Package cubegen generates parametric "cube" objects from bilingual prompts,
// template names or randomness, and builds contextual, composite, batch and
// grouped scenes on top of that base pipeline.
package cubegen

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"

	"github.com/cognicore/cubegen/pkg/cubegen/catalog"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/finetune"
	"github.com/cognicore/cubegen/pkg/cubegen/ingest"
	"github.com/cognicore/cubegen/pkg/cubegen/lexicon"
	"github.com/cognicore/cubegen/pkg/cubegen/schema"
	"github.com/cognicore/cubegen/pkg/cubegen/style"
)

// Engine is the generation facade. All methods are safe for concurrent use;
// sub-generations inside one call run in sequence.
type Engine struct {
	pipeline  *ingest.Pipeline
	validator schema.Validator
	tuner     *finetune.Tuner
	log       zerolog.Logger
	now       func() time.Time
	ids       *cube.IDSource
	author    string
	easing    ease.TweenFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Options configures an Engine. Every field is optional.
type Options struct {
	Pipeline  *ingest.Pipeline // defaults to the built-in lexicon and phrases
	Validator schema.Validator // defaults to the embedded JSON schema
	Tuner     *finetune.Tuner  // defaults to an in-memory tuner over Pipeline
	Logger    *zerolog.Logger  // defaults to a no-op logger
	Seed      int64            // 0 seeds from the clock
	Clock     func() time.Time // defaults to time.Now
	IDs       *cube.IDSource   // defaults to crypto/rand entropy
	Author    string           // defaults to cube.Author
	Easing    ease.TweenFunc   // group position curve, defaults to linear
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	if opts.Pipeline == nil {
		opts.Pipeline = ingest.NewPipeline(ingest.NewTokenizer(lexicon.Builtin()), ingest.BuiltinPhraseParser())
	}
	if opts.Validator == nil {
		opts.Validator = schema.MustJSONSchema()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Tuner == nil {
		opts.Tuner = finetune.New(finetune.Options{Pipeline: opts.Pipeline, Clock: opts.Clock})
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.IDs == nil {
		opts.IDs = cube.NewIDSource()
	}
	if opts.Author == "" {
		opts.Author = cube.Author
	}
	if opts.Easing == nil {
		opts.Easing = ease.Linear
	}

	return &Engine{
		pipeline:  opts.Pipeline,
		validator: opts.Validator,
		tuner:     opts.Tuner,
		log:       logger,
		now:       opts.Clock,
		ids:       opts.IDs,
		author:    opts.Author,
		easing:    opts.Easing,
		rng:       rand.New(rand.NewSource(opts.Seed)),
	}
}

// Templates lists the names accepted by FromTemplate.
func (e *Engine) Templates() []string { return catalog.MaterialNames() }

// Themes lists the names accepted as Context.Theme.
func (e *Engine) Themes() []string { return catalog.ThemeNames() }

// GroupTypes lists the names accepted by Group.
func (e *Engine) GroupTypes() []string { return catalog.GroupTypeNames() }

// ExtractStyle aggregates a shared style over objects.
func (e *Engine) ExtractStyle(objects []cube.Object) style.Style {
	return style.Extract(objects)
}

// Tuner exposes the fine-tuning dataset handle.
func (e *Engine) Tuner() *finetune.Tuner { return e.tuner }
