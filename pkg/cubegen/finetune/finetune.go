// Package finetune keeps the rated example dataset and retrieves the closest
// prior example for a prompt.
package finetune

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/dataset"
	"github.com/cognicore/cubegen/pkg/cubegen/ingest"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
	"github.com/cognicore/cubegen/pkg/cubegen/store"
)

// Threshold is the weighted similarity a stored example must exceed to be reused.
const Threshold = 0.5

// DefaultName names lazily created datasets.
const DefaultName = "fine-tuning"

// Options configures a Tuner.
type Options struct {
	Pipeline *ingest.Pipeline // tokenises prompts for similarity; required
	Store    store.Store      // optional write-through persistence
	Clock    func() time.Time // defaults to time.Now
	Name     string           // name given to a new dataset
}

// Tuner owns the dataset. Safe for concurrent use.
type Tuner struct {
	mu       sync.Mutex
	data     *dataset.Dataset
	pipeline *ingest.Pipeline
	store    store.Store
	now      func() time.Time
	name     string
}

// Match is the best stored example for a prompt.
type Match struct {
	Example dataset.Example
	Score   float64 // jaccard × rating
}

// New creates a Tuner with no dataset.
func New(opts Options) *Tuner {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	return &Tuner{
		pipeline: opts.Pipeline,
		store:    opts.Store,
		now:      opts.Clock,
		name:     opts.Name,
	}
}

// Add appends an example, creating the dataset on first use. With a store the
// example is persisted first and only then becomes visible to Best.
func (t *Tuner) Add(ctx context.Context, ex dataset.Example) error {
	if ex.Rating != nil && !dataset.ValidRating(*ex.Rating) {
		return fmt.Errorf("rating %v: %w", *ex.Rating, internalerr.ErrInvalidInput)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = now
	}
	ex = ex.Clone()

	created := t.data == nil
	next := t.data.Clone()
	if created {
		next = dataset.New(t.name, now)
	}
	next.Append(ex, now)

	if t.store != nil {
		if created {
			if err := t.store.SaveDataset(ctx, next); err != nil {
				return fmt.Errorf("persist dataset: %w", err)
			}
		} else if err := t.store.AppendExample(ctx, next.ID, ex, next.Version, next.UpdatedAt); err != nil {
			return fmt.Errorf("persist example: %w", err)
		}
	}
	t.data = next
	return nil
}

// RecordFeedback stores a rated correction. The rating is clamped to [0,1];
// NaN is rejected.
func (t *Tuner) RecordFeedback(ctx context.Context, prompt string, obj cube.Object, rating float64) error {
	if math.IsNaN(rating) {
		return fmt.Errorf("rating %v: %w", rating, internalerr.ErrInvalidInput)
	}
	return t.Add(ctx, dataset.Example{
		PromptText: prompt,
		Object:     obj,
		Rating:     dataset.Rating(cube.Clamp01(rating)),
	})
}

// Dataset returns a copy of the dataset, or nil when none exists.
func (t *Tuner) Dataset() *dataset.Dataset {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data.Clone()
}

// Clear drops the dataset and its persisted copy.
func (t *Tuner) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.data == nil {
		return nil
	}
	id := t.data.ID
	t.data = nil
	if t.store != nil {
		if err := t.store.DeleteDataset(ctx, id); err != nil {
			return fmt.Errorf("delete dataset %s: %w", id, err)
		}
	}
	return nil
}

// Export renders the dataset as JSON.
func (t *Tuner) Export() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.data == nil {
		return nil, internalerr.ErrEmptyDataset
	}
	return t.data.Export()
}

// Load replaces the dataset with one parsed from an exported document.
func (t *Tuner) Load(ctx context.Context, data []byte) error {
	d, err := dataset.Import(data)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store != nil {
		if err := t.store.SaveDataset(ctx, d); err != nil {
			return fmt.Errorf("persist dataset: %w", err)
		}
	}
	t.data = d
	return nil
}

// Restore loads the most recently updated dataset from the store.
func (t *Tuner) Restore(ctx context.Context) (bool, error) {
	if t.store == nil {
		return false, nil
	}
	d, ok, err := t.store.LatestDataset(ctx)
	if err != nil {
		return false, fmt.Errorf("restore dataset: %w", err)
	}
	if !ok {
		return false, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.data = d
	return true, nil
}

// Best returns the highest scoring example for prompt. ok is true only when a
// dataset exists and the score exceeds Threshold. Ties keep the earliest example.
func (t *Tuner) Best(prompt string) (Match, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.data == nil || len(t.data.Examples) == 0 {
		return Match{}, false
	}

	query := t.pipeline.TokenSet(prompt)
	best := Match{Score: -1}
	for _, ex := range t.data.Examples {
		score := Jaccard(query, t.pipeline.TokenSet(ex.PromptText)) * ex.EffectiveRating()
		if score > best.Score {
			best = Match{Example: ex, Score: score}
		}
	}
	if best.Score <= Threshold {
		return best, false
	}
	best.Example = best.Example.Clone()
	return best, true
}

// Active reports whether a dataset exists.
func (t *Tuner) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data != nil
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
