package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fzft/go-hashset/hashset"
	"github.com/fzft/go-hashset/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	HsetCliHisFileEnv     = "HSETCLI_HISTFILE"
	HsetCliHisFileDefault = ".hsetcli_history"
	HsetCliRCFileEnv      = "HSETCLI_RCFILE"
	HsetCliRCFileDefault  = ".hsetclirc.toml"
)

const (
	KeyTypeString = "string"
	KeyTypeInt    = "int"

	GrowthQuad   = "quad"
	GrowthDouble = "double"
)

// Config is the hsetcli configuration, read from a TOML rc file and then
// overridden by command-line flags.
type Config struct {
	KeyType        string  `toml:"key_type"`
	InitialBuckets int     `toml:"initial_buckets"`
	MinBuckets     int     `toml:"min_buckets"`
	MaxLoadFactor  float64 `toml:"max_load_factor"`
	Growth         string  `toml:"growth"`
	LogLevel       string  `toml:"log_level"`
	HistoryFile    string  `toml:"history_file"`
}

func DefaultConfig() *Config {
	return &Config{
		KeyType:        KeyTypeString,
		InitialBuckets: hashset.DefaultMinBuckets,
		MinBuckets:     hashset.DefaultMinBuckets,
		MaxLoadFactor:  hashset.DefaultMaxLoadFactor,
		Growth:         GrowthQuad,
		LogLevel:       "warn",
		HistoryFile:    getDotfilePath(HsetCliHisFileEnv, HsetCliHisFileDefault),
	}
}

// LoadConfig reads path over the defaults. An empty path, or a path that
// does not exist, yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		log.Logger.Warn("unknown config keys", zap.String("file", path), zap.Strings("keys", keys))
	}
	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	return cfg, nil
}

// Validate checks the values a set would otherwise reject by panicking.
func (c *Config) Validate() error {
	switch c.KeyType {
	case KeyTypeString, KeyTypeInt:
	default:
		return errors.Errorf("unknown key_type %q", c.KeyType)
	}
	switch c.Growth {
	case GrowthQuad, GrowthDouble:
	default:
		return errors.Errorf("unknown growth %q", c.Growth)
	}
	if c.MinBuckets < 1 {
		return errors.Errorf("min_buckets must be at least 1, got %d", c.MinBuckets)
	}
	if !(c.MaxLoadFactor >= hashset.MinMaxLoadFactor && c.MaxLoadFactor <= 1) {
		return errors.Errorf("max_load_factor must be in [%v, 1], got %v", hashset.MinMaxLoadFactor, c.MaxLoadFactor)
	}
	return nil
}

// SetOptions translates the config into hashset options.
func (c *Config) SetOptions() ([]hashset.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var growth hashset.GrowthPolicy = hashset.QuadGrowth{}
	if c.Growth == GrowthDouble {
		growth = hashset.DoublingGrowth{}
	}
	return []hashset.Option{
		hashset.WithInitialBuckets(c.InitialBuckets),
		hashset.WithMinBuckets(c.MinBuckets),
		hashset.WithMaxLoadFactor(c.MaxLoadFactor),
		hashset.WithGrowthPolicy(growth),
		hashset.WithLogger(log.Logger.Named("hashset")),
	}, nil
}

func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home := os.Getenv("HOME")
	if home == "" {
		return path
	}
	return home + path[1:]
}
