package config

import (
	"os"
	"path/filepath"
	"testing"

	"markov-go/internal/service/markov"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, markov.DefaultMaxOutputTokens, cfg.Markov.MaxOutputTokens)
	assert.Equal(t, markov.DefaultCapacityHint, cfg.Markov.CapacityHint)
	assert.Equal(t, uint64(0), cfg.Markov.Seed)
	assert.Equal(t, "whitespace", cfg.Markov.Tokenizer)
	assert.Equal(t, []string{"stderr"}, cfg.Logging.OutputPaths)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	data := []byte(`
app:
  port: 9090
markov:
  max_output_tokens: 50
  seed: 7
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 50, cfg.Markov.MaxOutputTokens)
	assert.Equal(t, uint64(7), cfg.Markov.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, 20000, cfg.Markov.CapacityHint)
	assert.Equal(t, "localhost:8081", cfg.Mcp.GetAddress())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("markov: [not, a, map]"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("markov:\n  max_output_tokens: -1\n"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("markov:\n  max_output_tokens: 1000001\n"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("app:\n  port: 70000\n"))
	require.Error(t, err)
}
