package store

import (
	"context"
	"time"

	"github.com/cognicore/cubegen/pkg/cubegen/dataset"
)

// Store persists fine-tuning datasets.
type Store interface {
	Close() error

	// Datasets
	SaveDataset(ctx context.Context, d *dataset.Dataset) error
	LoadDataset(ctx context.Context, id string) (*dataset.Dataset, bool, error)
	LatestDataset(ctx context.Context) (*dataset.Dataset, bool, error)
	DeleteDataset(ctx context.Context, id string) error
	ListDatasets(ctx context.Context) ([]DatasetInfo, error)

	// Examples
	AppendExample(ctx context.Context, datasetID string, ex dataset.Example, version int, updatedAt time.Time) error
}

// DatasetInfo summarises a stored dataset without its examples.
type DatasetInfo struct {
	ID        string
	Name      string
	Version   int
	Examples  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
