package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cubegen.yaml", `seed: 42
author: studio
lexicon: extra-lexicon.yaml
dataset: /var/lib/cubegen/datasets.db
log_level: debug
group:
  easing: in-out-sine
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "studio", cfg.Author)
	assert.Equal(t, filepath.Join(dir, "extra-lexicon.yaml"), cfg.Lexicon)
	assert.Equal(t, "/var/lib/cubegen/datasets.db", cfg.Dataset)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, "in-out-sine", cfg.Group.Easing)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cubegen.toml", `seed = 7
log_level = "warn"

[group]
easing = "out-quad"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, cube.Author, cfg.Author, "missing author keeps default")
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
	assert.Equal(t, "out-quad", cfg.Group.Easing)
}

func TestLoadDefaultsForEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, t.TempDir(), "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "cubegen.json", `{}`))
	assert.True(t, errors.Is(err, internalerr.ErrInvalidConfig))

	_, err = Load(writeFile(t, dir, "level.yaml", "log_level: loud\n"))
	assert.True(t, errors.Is(err, internalerr.ErrInvalidConfig))

	_, err = Load(writeFile(t, dir, "easing.yaml", "group:\n  easing: bounce\n"))
	assert.True(t, errors.Is(err, internalerr.ErrInvalidConfig))

	_, err = Load(writeFile(t, dir, "broken.yaml", "seed: [\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEasingLookup(t *testing.T) {
	for _, name := range EasingNames() {
		fn, ok := LookupEasing(name)
		require.True(t, ok, name)
		assert.InDelta(t, 0, fn(0, 0, 1, 1), 1e-6, name)
		assert.InDelta(t, 1, fn(1, 0, 1, 1), 1e-6, name)
	}

	_, ok := LookupEasing("bounce")
	assert.False(t, ok)

	cfg := Default()
	assert.InDelta(t, 0.25, cfg.Easing()(0.25, 0, 1, 1), 1e-6)
}

func TestLoadDict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "phrases.txt", `# Phrase dictionary
stained-glass|stained glass|витражное стекло|material
mossy|покрытый мхом|modifier

invalid-line-without-pipes
`)

	dict, err := LoadDict(path)
	require.NoError(t, err)
	require.Len(t, dict.Entries, 2)

	first := dict.Entries[0]
	assert.Equal(t, "stained-glass", first.Canonical)
	assert.Equal(t, []string{"stained glass", "витражное стекло"}, first.Variants)
	assert.Equal(t, "material", first.Category)

	second := dict.Entries[1]
	assert.Equal(t, "mossy", second.Canonical)
	assert.Empty(t, second.Variants)
	assert.Equal(t, "покрытый мхом", second.Category)
}
