package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/cubegen/pkg/cubegen"
	"github.com/cognicore/cubegen/pkg/cubegen/config"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	cfg.LogLevel = "error"
	cfg.Dataset = filepath.Join(t.TempDir(), "datasets.db")
	return cfg
}

// TestBuildAppRestoresDataset tests that feedback survives a restart
func TestBuildAppRestoresDataset(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, cleanup, err := buildApp(ctx, cfg)
	require.NoError(t, err)
	res := a.generate(ctx, "polished marble", "")
	require.True(t, res.Success)
	require.NoError(t, a.engine.RecordFeedback(ctx, "polished marble", *res.Object, 1))
	cleanup()

	a, cleanup, err = buildApp(ctx, cfg)
	require.NoError(t, err)
	defer cleanup()

	again := a.generate(ctx, "polished marble", "")
	assert.True(t, again.Object.HasTag("fine-tuned"))

	infos, err := a.store.ListDatasets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, 1, infos[0].Examples)
}

// TestBuildAppMissingLexicon tests that buildApp fails with a missing lexicon file
func TestBuildAppMissingLexicon(t *testing.T) {
	cfg := testConfig(t)
	cfg.Lexicon = filepath.Join(t.TempDir(), "nonexistent.yaml")

	_, _, err := buildApp(context.Background(), cfg)
	assert.Error(t, err)
}

// TestBuildAppStoreUnavailable tests that an unopenable dataset path is reported as such
func TestBuildAppStoreUnavailable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dataset = filepath.Join(t.TempDir(), "missing", "dir", "datasets.db")

	_, _, err := buildApp(context.Background(), cfg)
	assert.True(t, errors.Is(err, internalerr.ErrStoreUnavailable))
}

func TestExecuteCommands(t *testing.T) {
	ctx := context.Background()
	a, cleanup, err := buildApp(ctx, testConfig(t))
	require.NoError(t, err)
	defer cleanup()

	var buf bytes.Buffer
	out := newPrinter(&buf, false)
	theme := ""

	require.Error(t, execute(ctx, a, out, ":rate 0.5", &theme), "nothing to rate yet")

	require.NoError(t, execute(ctx, a, out, "тёмный гранит", &theme))
	assert.Contains(t, buf.String(), `"material": "stone"`)

	require.NoError(t, execute(ctx, a, out, ":rate 0.9", &theme))
	require.NotNil(t, a.engine.Dataset())
	assert.Len(t, a.engine.Dataset().Examples, 1)

	require.NoError(t, execute(ctx, a, out, ":theme futuristic", &theme))
	assert.Equal(t, "futuristic", theme)

	buf.Reset()
	require.NoError(t, execute(ctx, a, out, ":group column brick", &theme))
	assert.Contains(t, buf.String(), `"type": "column"`)

	assert.Error(t, execute(ctx, a, out, ":fly", &theme))
	assert.Error(t, execute(ctx, a, out, ":rate high", &theme))
	assert.True(t, errors.Is(execute(ctx, a, out, ":rate nan", &theme), internalerr.ErrInvalidInput))
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	a, cleanup, err := buildApp(ctx, testConfig(t))
	require.NoError(t, err)
	defer cleanup()

	res := a.engine.FromTemplate(ctx, "ice")
	require.NoError(t, a.engine.RecordFeedback(ctx, "ice cube", *res.Object, 0.8))

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, exportDataset(a, path))

	b, cleanupB, err := buildApp(ctx, testConfig(t))
	require.NoError(t, err)
	defer cleanupB()
	require.NoError(t, importDataset(ctx, b, path))
	assert.Equal(t, a.engine.Dataset().ID, b.engine.Dataset().ID)
}

func TestRunCompositeAndBatch(t *testing.T) {
	ctx := context.Background()
	a, cleanup, err := buildApp(ctx, testConfig(t))
	require.NoError(t, err)
	defer cleanup()

	dir := t.TempDir()
	compPath := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(compPath, []byte(`{
  "primary": "stone wall",
  "neighbors": [{"direction": "y", "relation": "gradient", "description": "moss"}]
}`), 0644))
	batchPath := filepath.Join(dir, "prompts.txt")
	require.NoError(t, os.WriteFile(batchPath, []byte("# tiles\nsnow\n\nice\n"), 0644))

	var buf bytes.Buffer
	out := newPrinter(&buf, false)

	require.NoError(t, runComposite(ctx, a, out, compPath))
	assert.Contains(t, buf.String(), `"positions"`)

	buf.Reset()
	require.NoError(t, runBatch(ctx, a, out, batchPath, cubegen.BatchRequest{Grouping: "related"}))
	assert.Contains(t, buf.String(), `"promptText": "snow"`)
	assert.Contains(t, buf.String(), `"promptText": "ice"`)

	assert.Error(t, runComposite(ctx, a, out, filepath.Join(dir, "missing.json")))
}

func TestParseDims(t *testing.T) {
	d, err := parseDims("2, 3,4")
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 3, 4}, d)

	d, err = parseDims("")
	require.NoError(t, err)
	assert.Equal(t, [3]int{}, d)

	_, err = parseDims("2,3")
	assert.Error(t, err)
	_, err = parseDims("a,b,c")
	assert.Error(t, err)
}
