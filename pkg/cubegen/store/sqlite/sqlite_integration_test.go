package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/dataset"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
	"github.com/cognicore/cubegen/pkg/cubegen/store"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func openTemp(t *testing.T) store.Store {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "datasets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleObject() cube.Object {
	return cube.Object{
		ID:         "01HZX",
		PromptText: "dark oak",
		Base:       cube.Base{Color: cube.Color{0.3, 0.2, 0.1}, Roughness: 0.7},
		Gradients: []cube.Gradient{
			{Axis: cube.AxisY, Factor: 0.4, ColorShift: cube.Color{0.15, 0.15, 0.15}},
		},
		Noise:   cube.Noise{Type: "perlin", Scale: 6, Octaves: 3, Persistence: 0.5},
		Physics: cube.Physics{Material: "wood", Density: 0.7, BreakPattern: "splinter"},
		Meta: cube.Meta{
			Name:      "Dark Oak",
			Tags:      []string{"wood", "natural"},
			Author:    cube.Author,
			CreatedAt: base,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	d := dataset.New("roundtrip", base)
	d.Append(dataset.Example{PromptText: "dark oak", Object: sampleObject(), CreatedAt: base}, base)
	require.NoError(t, st.SaveDataset(ctx, d))

	got, ok, err := st.LoadDataset(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.Examples, 1)

	ex := got.Examples[0]
	assert.Nil(t, ex.Rating)
	assert.Equal(t, dataset.DefaultRating, ex.EffectiveRating())
	assert.Equal(t, "wood", ex.Object.Physics.Material)
	assert.Equal(t, []string{"wood", "natural"}, ex.Object.Meta.Tags)
	require.Len(t, ex.Object.Gradients, 1)
	assert.Equal(t, cube.AxisY, ex.Object.Gradients[0].Axis)

	_, ok, err = st.LoadDataset(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveReplacesExamples(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	d := dataset.New("replace", base)
	d.Append(dataset.Example{PromptText: "a"}, base)
	d.Append(dataset.Example{PromptText: "b"}, base)
	require.NoError(t, st.SaveDataset(ctx, d))

	d.Examples = d.Examples[:1]
	require.NoError(t, st.SaveDataset(ctx, d))

	got, _, err := st.LoadDataset(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, got.Examples, 1)
	assert.Equal(t, "a", got.Examples[0].PromptText)
}

func TestAppendExample(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	d := dataset.New("append", base)
	require.NoError(t, st.SaveDataset(ctx, d))

	later := base.Add(time.Hour)
	require.NoError(t, st.AppendExample(ctx, d.ID, dataset.Example{PromptText: "first"}, 1, later))
	require.NoError(t, st.AppendExample(ctx, d.ID, dataset.Example{PromptText: "second", Rating: dataset.Rating(0.2)}, 2, later))

	got, _, err := st.LoadDataset(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	assert.True(t, later.Equal(got.UpdatedAt))
	require.Len(t, got.Examples, 2)
	assert.Equal(t, "first", got.Examples[0].PromptText)
	assert.Equal(t, 0.2, got.Examples[1].EffectiveRating())

	err = st.AppendExample(ctx, "missing", dataset.Example{}, 1, later)
	assert.True(t, errors.Is(err, internalerr.ErrNotFound))
}

func TestLatestAndList(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	_, ok, err := st.LatestDataset(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	older := dataset.New("older", base)
	newer := dataset.New("newer", base.Add(time.Hour))
	newer.Append(dataset.Example{PromptText: "x"}, base.Add(time.Hour))
	require.NoError(t, st.SaveDataset(ctx, older))
	require.NoError(t, st.SaveDataset(ctx, newer))

	latest, ok, err := st.LatestDataset(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, newer.ID, latest.ID)

	infos, err := st.ListDatasets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "newer", infos[0].Name)
	assert.Equal(t, 1, infos[0].Examples)
	assert.Equal(t, 0, infos[1].Examples)
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	d := dataset.New("gone", base)
	d.Append(dataset.Example{PromptText: "x"}, base)
	require.NoError(t, st.SaveDataset(ctx, d))
	require.NoError(t, st.DeleteDataset(ctx, d.ID))

	_, ok, err := st.LoadDataset(ctx, d.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	var orphans int
	require.NoError(t, st.(*sqliteStore).db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM examples WHERE dataset_id = ?`, d.ID).Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestSaveRejectsMissingID(t *testing.T) {
	st := openTemp(t)
	err := st.SaveDataset(context.Background(), &dataset.Dataset{})
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
}
