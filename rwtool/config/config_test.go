package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultMaxLength, cfg.MaxLength)
	assert.Equal(t, DefaultAdversarialTokens, cfg.AdversarialTokens)
	assert.Equal(t, DefaultSubstitutions, cfg.Substitutions)
	assert.True(t, cfg.RoleWrapEnabled())
	assert.Nil(t, cfg.RandomSeed)
}

func TestDefaultsReturnsCopies(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.AdversarialTokens[0] = "mutated"
	cfg.Substitutions["kill"] = "mutated"

	assert.Equal(t, "<@>", DefaultAdversarialTokens[0])
	assert.Equal(t, "neutralize", DefaultSubstitutions["kill"])
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("nil_config", func(t *testing.T) {
		cfg := (*Config)(nil).WithDefaults()
		require.NotNil(t, cfg)
		assert.Equal(t, DefaultMaxLength, cfg.MaxLength)
	})

	t.Run("partial_config", func(t *testing.T) {
		cfg := (&Config{MaxLength: 120}).WithDefaults()
		assert.Equal(t, 120, cfg.MaxLength)
		assert.Equal(t, DefaultAdversarialTokens, cfg.AdversarialTokens)
		assert.Equal(t, DefaultRoleTemplate, cfg.RoleTemplate)
		assert.True(t, cfg.RoleWrapEnabled())
	})

	t.Run("explicit_false_preserved", func(t *testing.T) {
		f := false
		cfg := (&Config{IncludeRoleWrap: &f}).WithDefaults()
		assert.False(t, cfg.RoleWrapEnabled())
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{"nil", nil, "config is nil"},
		{"zero_max_length", &Config{AdversarialTokens: []string{"x"}}, "max_length"},
		{"negative_max_length", &Config{MaxLength: -5, AdversarialTokens: []string{"x"}}, "max_length"},
		{"empty_tokens", &Config{MaxLength: 10}, "adversarial_tokens"},
		{"bad_template", &Config{MaxLength: 10, AdversarialTokens: []string{"x"}, RoleTemplate: "no placeholder"}, "placeholder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.NoError(t, Defaults().Validate())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	seed := int64(42)
	f := false
	original := &Config{
		Version:           Version,
		MaxLength:         400,
		AdversarialTokens: []string{"<#>", "%%"},
		Substitutions:     map[string]string{"breach": "access"},
		RoleTemplate:      "As researcher: {prompt}",
		IncludeRoleWrap:   &f,
		RandomSeed:        &seed,
	}

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.MaxLength, loaded.MaxLength)
	assert.Equal(t, original.AdversarialTokens, loaded.AdversarialTokens)
	assert.Equal(t, original.Substitutions, loaded.Substitutions)
	assert.Equal(t, original.RoleTemplate, loaded.RoleTemplate)
	assert.False(t, loaded.RoleWrapEnabled())
	require.NotNil(t, loaded.RandomSeed)
	assert.Equal(t, seed, *loaded.RandomSeed)
}

func TestLoadNotExist(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.json")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Minimal config on disk; unset knobs come back as defaults.
	minimalJSON := `{"version": "0.0.1", "max_length": 200}`
	require.NoError(t, os.WriteFile(path, []byte(minimalJSON), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200, loaded.MaxLength)
	assert.Equal(t, DefaultAdversarialTokens, loaded.AdversarialTokens)
	assert.Equal(t, DefaultSubstitutions, loaded.Substitutions)
	assert.True(t, loaded.RoleWrapEnabled())
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
