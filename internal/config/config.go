// Package config loads and validates run configuration via Viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/JakeFAU/filecheck/internal/hash"
)

// EnvPrefix prefixes environment overrides, e.g. FILECHECK_STRICT=true.
const EnvPrefix = "FILECHECK"

// Config captures all run configuration knobs loaded via Viper.
type Config struct {
	Strict            bool          `mapstructure:"strict"`
	Colon             bool          `mapstructure:"colon"`
	SHA256            bool          `mapstructure:"sha256"`
	Algorithm         string        `mapstructure:"algorithm"`
	ConcurrentHandles int           `mapstructure:"concurrent_handles"`
	Workers           int           `mapstructure:"workers"`
	MetricsFile       string        `mapstructure:"metrics_file"`
	CPUProfile        string        `mapstructure:"cpuprofile"`
	Log               LoggingConfig `mapstructure:"log"`
}

// LoggingConfig toggles zap development features and verbosity.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// flagKeys maps viper keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"strict":             "strict",
	"colon":              "colon",
	"sha256":             "sha256",
	"algorithm":          "algorithm",
	"concurrent_handles": "concurrent-handles",
	"workers":            "workers",
	"metrics_file":       "metrics-file",
	"cpuprofile":         "cpuprofile",
	"log.development":    "log-development",
	"log.level":          "log-level",
}

// Load builds a Config from defaults, an optional file, the environment and
// flags, in increasing order of precedence. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("strict", false)
	v.SetDefault("colon", false)
	v.SetDefault("sha256", false)
	v.SetDefault("algorithm", "")
	v.SetDefault("concurrent_handles", 0)
	v.SetDefault("workers", 0)
	v.SetDefault("metrics_file", "")
	v.SetDefault("cpuprofile", "")
	v.SetDefault("log.development", false)
	v.SetDefault("log.level", "warn")
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.SHA256 && c.Algorithm != "" && !strings.EqualFold(c.Algorithm, hash.SHA256) {
		return fmt.Errorf("sha256 conflicts with algorithm %q", c.Algorithm)
	}
	if _, err := hash.New(c.HashAlgorithm()); err != nil {
		return fmt.Errorf("algorithm: %w", err)
	}
	if c.ConcurrentHandles < 0 {
		return errors.New("concurrent_handles must be >= 0")
	}
	if c.Workers < 0 {
		return errors.New("workers must be >= 0")
	}
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return nil
}

// HashAlgorithm resolves the algorithm for the run. The sha256 switch wins,
// then an explicit algorithm, then hash.Default.
func (c Config) HashAlgorithm() string {
	switch {
	case c.SHA256:
		return hash.SHA256
	case c.Algorithm != "":
		return strings.ToLower(c.Algorithm)
	default:
		return hash.Default
	}
}
