package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int    `env:"GLULXRAND_TEST_PORT" envDefault:"123"`
	Seed uint32 `env:"GLULXRAND_TEST_SEED"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GLULXRAND_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvReadsValues(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GLULXRAND_TEST_PORT", "9000")
	t.Setenv("GLULXRAND_TEST_SEED", "4294967295")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9000 || cfg.Seed != 4294967295 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseEnvRejectsOverflowingSeed(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GLULXRAND_TEST_SEED", "4294967296")

	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected overflow error")
	}
}
