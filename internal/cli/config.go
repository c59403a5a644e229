package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wordmorph/wordmorph/pkg/cache"
	"github.com/wordmorph/wordmorph/pkg/pipeline"
)

// Config holds settings loaded from the optional config file.
// Command-line flags override anything set here.
type Config struct {
	// Workers is the solve concurrency. Zero means auto-detect.
	Workers int `toml:"workers"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the path-result cache backend.
type CacheConfig struct {
	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`

	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`

	// RedisAddr switches to the Redis backend, e.g. "localhost:6379".
	RedisAddr string `toml:"redis_addr"`
}

// defaultConfigPath returns the standard config file location.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wordmorph", "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file is not an error; a missing
// explicit file is.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// workers resolves the solve concurrency from config, or auto-detects.
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return pipeline.DefaultWorkers()
}

// cacheDir returns the file cache directory, honoring the config override.
func (c Config) cacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wordmorph"), nil
}

// openCache builds the configured cache backend.
// The caller owns the returned cache and must Close it.
func (c Config) openCache(ctx context.Context) (cache.Cache, error) {
	if c.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if c.Cache.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, c.Cache.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", c.Cache.RedisAddr, err)
		}
		return rc, nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return nil, fmt.Errorf("get cache dir: %w", err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, fmt.Errorf("open file cache: %w", err)
	}
	return fc, nil
}
