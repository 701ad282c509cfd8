// Package dataset defines the rated examples that back fine-tuning and their
// JSON document form.
package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
)

// DefaultRating applies to examples stored without a rating.
const DefaultRating = 0.7

// FormatVersion is written into exported documents.
const FormatVersion = 1

// Example is one rated prompt/object pair.
type Example struct {
	PromptText string      `json:"promptText"`
	Object     cube.Object `json:"object"`
	Rating     *float64    `json:"rating,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// EffectiveRating returns the rating, or DefaultRating when absent.
func (e Example) EffectiveRating() float64 {
	if e.Rating == nil {
		return DefaultRating
	}
	return *e.Rating
}

// Clone deep-copies the example.
func (e Example) Clone() Example {
	out := e
	out.Object = e.Object.Clone()
	if e.Rating != nil {
		r := *e.Rating
		out.Rating = &r
	}
	return out
}

// ValidRating reports whether r is a number in [0,1].
func ValidRating(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r <= 1
}

// Rating returns a pointer to r, for building examples.
func Rating(r float64) *float64 { return &r }

// Dataset is an ordered collection of examples with identity and versioning.
type Dataset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Examples  []Example `json:"examples"`
}

// New creates an empty dataset.
func New(name string, now time.Time) *Dataset {
	return &Dataset{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Examples:  []Example{},
	}
}

// Append adds an example and bumps the version.
func (d *Dataset) Append(ex Example, now time.Time) {
	d.Examples = append(d.Examples, ex)
	d.Version++
	d.UpdatedAt = now
}

// Clone deep-copies the dataset.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	out := *d
	out.Examples = make([]Example, len(d.Examples))
	for i, ex := range d.Examples {
		out.Examples[i] = ex.Clone()
	}
	return &out
}

type document struct {
	Format int `json:"format"`
	*Dataset
}

// Export renders the dataset as an indented JSON document.
func (d *Dataset) Export() ([]byte, error) {
	return json.MarshalIndent(document{Format: FormatVersion, Dataset: d}, "", "  ")
}

// Import parses a document written by Export.
func Import(data []byte) (*Dataset, error) {
	var doc document
	doc.Dataset = &Dataset{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if doc.Format > FormatVersion {
		return nil, fmt.Errorf("dataset format %d: %w", doc.Format, internalerr.ErrInvalidInput)
	}
	d := doc.Dataset
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Examples == nil {
		d.Examples = []Example{}
	}
	for i, ex := range d.Examples {
		if ex.Rating != nil && !ValidRating(*ex.Rating) {
			return nil, fmt.Errorf("example %d rating %v: %w", i, *ex.Rating, internalerr.ErrInvalidInput)
		}
	}
	return d, nil
}
