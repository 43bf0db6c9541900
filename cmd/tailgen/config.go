package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/tailgen"
	"github.com/yacobolo/tailgen/internal/accel"
	"github.com/yacobolo/tailgen/internal/optimizer"
)

var k = koanf.New(".")

// skipConfigAnnotation marks commands that must run without reading the
// config file, so a broken .tailgen.yaml can still be replaced by init.
const skipConfigAnnotation = "tailgen/skip-config"

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags.
func loadConfig(cmd *cobra.Command) error {
	if _, skip := cmd.Annotations[skipConfigAnnotation]; !skip {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = ".tailgen.yaml"
		}

		if err := loadConfigFromPath(configPath); err != nil {
			return err
		}
	}

	return loadFlags(cmd)
}

// loadFlags loads the flags that were explicitly set on cmd. Defaults live
// in the get*WithFallback calls.
func loadFlags(cmd *cobra.Command) error {
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the config file and environment variables.
// Separated from loadConfig so tests can run without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// TAILGEN_BUILD_OUTPUT -> build.output
	// TAILGEN_CACHE_REDIS_ADDR -> cache.redis.addr
	if err := k.Load(env.Provider("TAILGEN_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TAILGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildBuildConfig constructs the library's Config from koanf state. The
// cache is opened separately by openCache.
func buildBuildConfig() (tailgen.Config, error) {
	defaults := tailgen.DefaultConfig()

	optCfg, err := buildOptimizerConfig()
	if err != nil {
		return tailgen.Config{}, err
	}

	return tailgen.Config{
		ScanPaths:     getStringsWithFallback("paths", "build.paths", defaults.ScanPaths),
		OutputFile:    getStringWithFallback("output", "build.output", defaults.OutputFile),
		ThemeFile:     getStringWithFallback("theme", "theme", ""),
		Minify:        getBoolWithFallback("minify", "build.minify", defaults.Minify),
		Optimize:      getBoolWithFallback("optimize", "build.optimize", defaults.Optimize),
		Optimizer:     optCfg,
		Workers:       getIntWithFallback("workers", "build.workers", 0),
		CacheTTL:      getDurationWithFallback("cache-ttl", "cache.ttl", 0),
		Strict:        getBoolWithFallback("strict", "build.strict", false),
		MaxIssues:     getIntWithFallback("max-issues", "build.max-issues", 0),
		MaxSameIssues: getIntWithFallback("max-same-issues", "build.max-same-issues", 0),
	}, nil
}

// buildOptimizerConfig starts from optimizer.DefaultConfig and applies the
// optimizer section, then the compression-level flag.
func buildOptimizerConfig() (optimizer.Config, error) {
	cfg := optimizer.DefaultConfig()
	if err := k.Unmarshal("optimizer", &cfg); err != nil {
		return cfg, fmt.Errorf("decoding optimizer config: %w", err)
	}
	if k.Exists("level") {
		cfg.CompressionLevel = k.Int("level")
	}
	return cfg, nil
}

// cacheSettings selects and sizes the compile cache
type cacheSettings struct {
	Backend string // memory | file | redis | none
	Dir     string
	Size    int
	TTL     time.Duration
	Redis   accel.RedisConfig
}

func buildCacheSettings() (cacheSettings, error) {
	s := cacheSettings{
		Backend: getStringWithFallback("cache-backend", "cache.backend", "memory"),
		Dir:     getStringWithFallback("cache-dir", "cache.dir", ".tailgen-cache"),
		Size:    getIntWithFallback("cache-size", "cache.size", 4096),
		TTL:     getDurationWithFallback("cache-ttl", "cache.ttl", 0),
	}
	if err := k.Unmarshal("cache.redis", &s.Redis); err != nil {
		return s, fmt.Errorf("decoding redis config: %w", err)
	}
	if addr := k.String("redis-addr"); addr != "" {
		s.Redis.Addr = addr
	}
	if s.Backend == "redis" && s.Redis.Addr == "" {
		s.Redis.Addr = "localhost:6379"
	}
	return s, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback is getStringWithFallback for lists.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}
