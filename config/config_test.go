package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pragbank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
corpus: "data/fb-semprag.db"
split: train
top_n: 5
lemmatizer: none
verbnet_dir: "/usr/share/verbnet"

log:
  level: "debug"
  format: "json"

scorer:
  python: "python2"
  script_dir: "data/Evaluation_Scripts"
`

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "fb-semprag.csv", cfg.Corpus)
	assert.Empty(t, cfg.Split)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, LemmatizerGolem, cfg.Lemmatizer)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "python", cfg.Scorer.Python)
	assert.Equal(t, ".", cfg.Scorer.ScriptDir)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeYAML(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "data/fb-semprag.db", cfg.Corpus)
	assert.Equal(t, "train", cfg.Split)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, LemmatizerNone, cfg.Lemmatizer)
	assert.Equal(t, "/usr/share/verbnet", cfg.VerbNet)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "python2", cfg.Scorer.Python)
	assert.Equal(t, "data/Evaluation_Scripts", cfg.Scorer.ScriptDir)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	t.Setenv("PRAGBANK_TOP_N", "3")
	t.Setenv("PRAGBANK_CORPUS", "other.csv")

	cfg, err := Load(writeYAML(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "other.csv", cfg.Corpus)
	assert.Equal(t, "train", cfg.Split)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("PRAGBANK_SPLIT", "test")
	t.Setenv("PRAGBANK_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Split)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "not found")

	_, err = Load(writeYAML(t, "top_n: [1"))
	assert.Error(t, err)

	tests := map[string]string{
		"split":      "split: dev\n",
		"top_n":      "top_n: -1\n",
		"log format": "log:\n  format: xml\n",
		"lemmatizer": "lemmatizer: wordnet\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeYAML(t, content))
			assert.Error(t, err)
		})
	}
}
