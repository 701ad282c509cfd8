package cubegen

import (
	"context"
	"math"
	"time"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/dataset"
)

// WithFineTuning reuses the closest rated example when its weighted
// similarity exceeds the tuner threshold, and runs the base pipeline
// otherwise.
func (e *Engine) WithFineTuning(ctx context.Context, prompt string) cube.Result {
	m, ok := e.tuner.Best(prompt)
	if !ok {
		return e.generate(prompt)
	}

	now := e.now()
	obj := m.Example.Object.Clone()
	obj.ID = e.ids.New(now)
	obj.PromptText = prompt
	obj.Meta.CreatedAt = now.UTC().Truncate(time.Millisecond)
	obj.AddTags("fine-tuned")
	obj.ClampBase()

	e.log.Debug().
		Str("prompt", prompt).
		Str("example", m.Example.PromptText).
		Float64("score", m.Score).
		Msg("reused fine-tuning example")

	return cube.Result{
		Success:    true,
		Object:     &obj,
		Method:     cube.MethodTemplate,
		Confidence: math.Min(0.7+m.Score*0.3, 0.98),
	}
}

// AddTrainingExample appends an example to the dataset.
func (e *Engine) AddTrainingExample(ctx context.Context, ex dataset.Example) error {
	return e.tuner.Add(ctx, ex)
}

// RecordFeedback stores a corrected object for prompt with a rating in [0,1].
func (e *Engine) RecordFeedback(ctx context.Context, prompt string, obj cube.Object, rating float64) error {
	return e.tuner.RecordFeedback(ctx, prompt, obj, rating)
}

// Dataset returns a copy of the fine-tuning dataset, or nil before the first example.
func (e *Engine) Dataset() *dataset.Dataset { return e.tuner.Dataset() }

// ClearDataset drops the fine-tuning dataset.
func (e *Engine) ClearDataset(ctx context.Context) error { return e.tuner.Clear(ctx) }

// ExportDataset renders the dataset as a JSON document.
func (e *Engine) ExportDataset() ([]byte, error) { return e.tuner.Export() }

// LoadDataset replaces the dataset with an exported document.
func (e *Engine) LoadDataset(ctx context.Context, data []byte) error {
	return e.tuner.Load(ctx, data)
}
