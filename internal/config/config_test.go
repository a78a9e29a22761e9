package config

import (
	"os"
	"path/filepath"
	"testing"

	"cloudeng.io/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cs := &configService{filePath: filepath.Join(dir, "missing.toml")}

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := &configService{filePath: path}

	cfg := DefaultConfig()
	cfg.Mode = ModeSingle
	cfg.FirstDayOfWeek = 0
	cfg.UseActions = true
	cfg.StartDate = "2024-02-29"
	require.NoError(t, cs.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "single")

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = \"single\"\n"), 0644))

	cfg, err := NewConfigServiceAt(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, ModeSingle, cfg.Mode)
	assert.Equal(t, DefaultConfig().DateFormat, cfg.DateFormat)
	assert.True(t, cfg.ShowPreview)
}

func TestLoadFromPathErrors(t *testing.T) {
	dir := t.TempDir()
	cs := NewConfigServiceAt(filepath.Join(dir, "config.toml"))

	_, err := cs.LoadFromPath(filepath.Join(dir, "nope.toml"))
	require.ErrorContains(t, err, "config file not found")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("mode = [\n"), 0644))
	_, err = cs.LoadFromPath(bad)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvMode:       " Single ",
		EnvDateFormat: "02/01/2006",
		EnvUseActions: "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, lookup))
	assert.Equal(t, ModeSingle, cfg.Mode)
	assert.Equal(t, "02/01/2006", cfg.DateFormat)
	assert.True(t, cfg.UseActions)

	env[EnvUseActions] = "sometimes"
	require.Error(t, ApplyEnv(cfg, lookup))
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvMode+"=single\n"), 0644))
	t.Cleanup(func() { os.Unsetenv(EnvMode) })

	cs := &configService{filePath: filepath.Join(dir, "config.toml"), envFile: envFile}
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, ModeSingle, cfg.Mode)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "multi"
	cfg.FirstDayOfWeek = 9
	cfg.StartDate = "tomorrow"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	for _, want := range []string{"mode must be", "first_day_of_week", "start_date"} {
		assert.ErrorContains(t, err, want)
	}

	cfg = DefaultConfig()
	cfg.DateFormat = ""
	assert.ErrorContains(t, cfg.Validate(), "date_format must not be empty")
}
