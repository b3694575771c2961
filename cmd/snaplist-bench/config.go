package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// BenchConfig drives the `run` subcommand. Its load/encode shape mirrors
// the teacher's own config package almost verbatim; only the fields
// changed, from proxy listeners/paths to producer/consumer/clear tuning.
type BenchConfig struct {
	Producers   int           `toml:"producers"`
	Consumers   int           `toml:"consumers"`
	PerProducer int           `toml:"per-producer"`
	ClearEvery  time.Duration `toml:"clear-every"`
	Watch       bool          `toml:"watch"`
}

func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Producers:   4,
		Consumers:   8,
		PerProducer: 100000,
		ClearEvery:  0,
		Watch:       true,
	}
}

func LoadConfigAndCheck(path string) (BenchConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return BenchConfig{}, err
	}
	defer f.Close()
	return ReadConfigAndCheck(f)
}

func ReadConfigAndCheck(r io.Reader) (BenchConfig, error) {
	cfg := DefaultBenchConfig()
	_, err := toml.NewDecoder(r).Decode(&cfg)
	if err == nil {
		err = cfg.CheckValid()
	}
	return cfg, err
}

func (cfg BenchConfig) EncodeString() (string, error) {
	b := &strings.Builder{}
	err := cfg.EncodeInto(b)
	return b.String(), err
}

func (cfg BenchConfig) EncodeInto(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func (cfg *BenchConfig) CheckValid() error {
	if cfg.Producers < 0 {
		return fmt.Errorf("producers must be >= 0, got %d", cfg.Producers)
	}
	if cfg.Consumers < 0 {
		return fmt.Errorf("consumers must be >= 0, got %d", cfg.Consumers)
	}
	if cfg.PerProducer < 0 {
		return fmt.Errorf("per-producer must be >= 0, got %d", cfg.PerProducer)
	}
	if cfg.ClearEvery < 0 {
		return fmt.Errorf("clear-every must be >= 0, got %s", cfg.ClearEvery)
	}
	return nil
}
