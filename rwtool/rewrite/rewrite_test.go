package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-harden/rewrite-toolbox/rwtool/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "missing.json")})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultMaxLength, cfg.MaxLength)
	assert.True(t, cfg.RoleWrapEnabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()

	opts := options{
		configPath: filepath.Join(t.TempDir(), "missing.json"),
		maxLength:  120,
		seed:       42,
		seedSet:    true,
		noRoleWrap: true,
		tokens:     []string{"%%", "##"},
	}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.MaxLength)
	require.NotNil(t, cfg.RandomSeed)
	assert.Equal(t, int64(42), *cfg.RandomSeed)
	assert.False(t, cfg.RoleWrapEnabled())
	assert.Equal(t, []string{"%%", "##"}, cfg.AdversarialTokens)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, (&config.Config{MaxLength: 300}).Save(path))

	cfg, err := loadConfig(options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.MaxLength)

	// Flag override beats the file value.
	cfg, err = loadConfig(options{configPath: path, maxLength: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxLength)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := loadConfig(options{configPath: path})
	assert.Error(t, err)
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("positional_args_joined", func(t *testing.T) {
		got, err := readInput([]string{"kill", "the", "process"}, "")
		require.NoError(t, err)
		assert.Equal(t, "kill the process", got)
	})

	t.Run("from_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.txt")
		require.NoError(t, os.WriteFile(path, []byte("file prompt"), 0644))

		got, err := readInput(nil, path)
		require.NoError(t, err)
		assert.Equal(t, "file prompt", got)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := readInput(nil, "/nonexistent/prompt.txt")
		assert.Error(t, err)
	})

	t.Run("no_input", func(t *testing.T) {
		_, err := readInput(nil, "")
		assert.Error(t, err)
	})
}
