package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/cubegen/pkg/cubegen/dataset"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
	"github.com/cognicore/cubegen/pkg/cubegen/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*dataset.Dataset
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		datasets: make(map[string]*dataset.Dataset),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveDataset inserts or replaces a dataset, keyed by ID.
func (s *Store) SaveDataset(ctx context.Context, d *dataset.Dataset) error {
	if d == nil || d.ID == "" {
		return fmt.Errorf("save dataset: %w", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[d.ID] = d.Clone()
	return nil
}

// LoadDataset returns a copy of the dataset with the given ID.
func (s *Store) LoadDataset(ctx context.Context, id string) (*dataset.Dataset, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if d, ok := s.datasets[id]; ok {
		return d.Clone(), true, nil
	}
	return nil, false, nil
}

// LatestDataset returns the most recently updated dataset.
func (s *Store) LatestDataset(ctx context.Context) (*dataset.Dataset, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *dataset.Dataset
	for _, d := range s.datasets {
		if latest == nil || d.UpdatedAt.After(latest.UpdatedAt) {
			latest = d
		}
	}
	if latest == nil {
		return nil, false, nil
	}
	return latest.Clone(), true, nil
}

// DeleteDataset removes a dataset. Deleting an unknown ID is not an error.
func (s *Store) DeleteDataset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.datasets, id)
	return nil
}

// ListDatasets returns summaries, most recently updated first.
func (s *Store) ListDatasets(ctx context.Context) ([]store.DatasetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.DatasetInfo, 0, len(s.datasets))
	for _, d := range s.datasets {
		out = append(out, store.DatasetInfo{
			ID:        d.ID,
			Name:      d.Name,
			Version:   d.Version,
			Examples:  len(d.Examples),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// AppendExample adds an example to an existing dataset.
func (s *Store) AppendExample(ctx context.Context, datasetID string, ex dataset.Example, version int, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.datasets[datasetID]
	if !ok {
		return fmt.Errorf("dataset %s: %w", datasetID, internalerr.ErrNotFound)
	}
	d.Examples = append(d.Examples, ex.Clone())
	d.Version = version
	d.UpdatedAt = updatedAt
	return nil
}
