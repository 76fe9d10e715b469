package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fzft/go-hashset/hashset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "hsetclirc.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, KeyTypeString, cfg.KeyType)
	assert.Equal(t, hashset.DefaultMinBuckets, cfg.InitialBuckets)
	assert.Equal(t, hashset.DefaultMaxLoadFactor, cfg.MaxLoadFactor)
	assert.Equal(t, GrowthQuad, cfg.Growth)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().KeyType, cfg.KeyType)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	path := writeConfig(t, `
key_type = "int"
initial_buckets = 31
min_buckets = 5
max_load_factor = 0.5
growth = "double"
log_level = "debug"
history_file = "~/.hist"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		KeyType:        KeyTypeInt,
		InitialBuckets: 31,
		MinBuckets:     5,
		MaxLoadFactor:  0.5,
		Growth:         GrowthDouble,
		LogLevel:       "debug",
		HistoryFile:    "/home/tester/.hist",
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigPartial(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `max_load_factor = 0.9`))
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.MaxLoadFactor)
	assert.Equal(t, KeyTypeString, cfg.KeyType)
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `key_type = `))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"key type", func(c *Config) { c.KeyType = "float" }},
		{"growth", func(c *Config) { c.Growth = "triple" }},
		{"min buckets", func(c *Config) { c.MinBuckets = 0 }},
		{"zero load", func(c *Config) { c.MaxLoadFactor = 0 }},
		{"tiny load", func(c *Config) { c.MaxLoadFactor = 1e-300 }},
		{"high load", func(c *Config) { c.MaxLoadFactor = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
			_, err := cfg.SetOptions()
			assert.Error(t, err)
		})
	}
}

func TestSetOptionsShapesSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialBuckets = 3
	cfg.MinBuckets = 3
	cfg.MaxLoadFactor = 1
	cfg.Growth = GrowthDouble

	opts, err := cfg.SetOptions()
	require.NoError(t, err)
	s := hashset.New[int](hashset.IntHasher[int]{}, opts...)
	assert.Equal(t, 3, s.BucketCount())
	s.InsertAll(1, 2, 3, 4)
	assert.Equal(t, 7, s.BucketCount(), "doubling from 3 buckets")
}

func TestGetDotfilePath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv(HsetCliHisFileEnv, "")
	assert.Equal(t, "/home/tester/.hsetcli_history", getDotfilePath(HsetCliHisFileEnv, HsetCliHisFileDefault))

	t.Setenv(HsetCliHisFileEnv, "/tmp/hist")
	assert.Equal(t, "/tmp/hist", getDotfilePath(HsetCliHisFileEnv, HsetCliHisFileDefault))

	t.Setenv(HsetCliHisFileEnv, "/dev/null")
	assert.Equal(t, "", getDotfilePath(HsetCliHisFileEnv, HsetCliHisFileDefault))
}
