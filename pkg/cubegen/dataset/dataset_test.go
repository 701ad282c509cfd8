package dataset

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestEffectiveRating(t *testing.T) {
	assert.Equal(t, DefaultRating, Example{}.EffectiveRating())
	assert.Equal(t, 0.0, Example{Rating: Rating(0)}.EffectiveRating())
	assert.Equal(t, 0.9, Example{Rating: Rating(0.9)}.EffectiveRating())
}

func TestAppendBumpsVersion(t *testing.T) {
	d := New("test", now)
	require.NotEmpty(t, d.ID)
	later := now.Add(time.Minute)

	d.Append(Example{PromptText: "stone"}, later)
	d.Append(Example{PromptText: "oak"}, later)

	assert.Equal(t, 2, d.Version)
	assert.Len(t, d.Examples, 2)
	assert.Equal(t, later, d.UpdatedAt)
	assert.Equal(t, now, d.CreatedAt)
}

func TestCloneIsDeep(t *testing.T) {
	d := New("test", now)
	d.Append(Example{
		PromptText: "stone",
		Object:     cube.Object{Meta: cube.Meta{Tags: []string{"a"}}},
		Rating:     Rating(0.5),
	}, now)

	c := d.Clone()
	c.Examples[0].Object.Meta.Tags[0] = "b"
	*c.Examples[0].Rating = 1

	assert.Equal(t, "a", d.Examples[0].Object.Meta.Tags[0])
	assert.Equal(t, 0.5, *d.Examples[0].Rating)

	var nilSet *Dataset
	assert.Nil(t, nilSet.Clone())
}

func TestExportImport(t *testing.T) {
	d := New("export", now)
	d.Append(Example{PromptText: "rated", Rating: Rating(1), CreatedAt: now}, now)
	d.Append(Example{PromptText: "unrated", CreatedAt: now}, now)

	data, err := d.Export()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format": 1`)

	got, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, d.Version, got.Version)
	require.Len(t, got.Examples, 2)
	assert.Equal(t, 1.0, got.Examples[0].EffectiveRating())
	assert.Nil(t, got.Examples[1].Rating, "absent rating must stay absent")
}

func TestImportRejectsBadInput(t *testing.T) {
	_, err := Import([]byte("{not json"))
	assert.Error(t, err)

	_, err = Import([]byte(`{"format": 99}`))
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))

	_, err = Import([]byte(`{"examples": [{"promptText": "x", "rating": 3}]}`))
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
}

func TestImportFillsIdentity(t *testing.T) {
	got, err := Import([]byte(`{"name": "bare"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.NotNil(t, got.Examples)
}

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.False(t, ValidRating(-0.01))
	assert.False(t, ValidRating(math.NaN()))
	assert.False(t, ValidRating(math.Inf(1)))
}
