// SPDX-License-Identifier: EPL-2.0

// Package config reads the command line tool settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvTargetSizeMB = "WAVFIT_TARGET_SIZE_MB"
	EnvLogLevel     = "WAVFIT_LOG_LEVEL"
	EnvSuffix       = "WAVFIT_SUFFIX"
	EnvMono         = "WAVFIT_MONO"
)

// Defaults used when a variable is unset.
const (
	DefaultTargetSizeMB = 3.0
	DefaultLogLevel     = "info"
	DefaultSuffix       = "_compressed"
)

// ErrInvalidConfig wraps every value that fails to parse or validate.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	TargetSizeMB float64
	LogLevel     string
	// Suffix is inserted between the input base name and ".wav".
	Suffix string
	Mono   bool
}

// Default returns the configuration with no environment applied.
func Default() *Config {
	return &Config{
		TargetSizeMB: DefaultTargetSizeMB,
		LogLevel:     DefaultLogLevel,
		Suffix:       DefaultSuffix,
	}
}

// Load reads envFile with godotenv, then the process environment. A
// non-empty environment variable wins over the file. A missing envFile is
// not an error.
func Load(envFile string) (*Config, error) {
	file := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, envFile, err)
		}
	}

	return Parse(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	})
}

// Parse builds a Config from lookup, which has the signature of os.LookupEnv.
func Parse(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvTargetSizeMB); ok && v != "" {
		mb, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvTargetSizeMB, v)
		}
		cfg.TargetSizeMB = mb
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvSuffix); ok && v != "" {
		cfg.Suffix = v
	}
	if v, ok := lookup(EnvMono); ok && v != "" {
		mono, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvMono, v)
		}
		cfg.Mono = mono
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that flags may have overridden.
func (c *Config) Validate() error {
	if math.IsNaN(c.TargetSizeMB) || math.IsInf(c.TargetSizeMB, 0) || c.TargetSizeMB <= 0 {
		return fmt.Errorf("%w: target size %v MB", ErrInvalidConfig, c.TargetSizeMB)
	}
	if c.Suffix == "" {
		return fmt.Errorf("%w: empty output suffix", ErrInvalidConfig)
	}

	return nil
}
