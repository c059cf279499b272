package random

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8095 {
		t.Fatalf("expected default port 8095, got %d", cfg.Port)
	}
	if cfg.Source != "system" {
		t.Fatalf("expected system source, got %q", cfg.Source)
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected native seed 0, got %d", cfg.Seed)
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("GLULXRAND_RANDOM_PORT", "9100")
	t.Setenv("GLULXRAND_RANDOM_SOURCE", "clock")
	t.Setenv("GLULXRAND_RANDOM_SEED", "7")

	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "12345"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9100 {
		t.Fatalf("expected env port 9100, got %d", cfg.Port)
	}
	if cfg.Source != "clock" {
		t.Fatalf("expected env source clock, got %q", cfg.Source)
	}
	if cfg.Seed != 12345 {
		t.Fatalf("expected flag seed 12345, got %d", cfg.Seed)
	}
}

func TestParseConfigRejectsWideSeed(t *testing.T) {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-seed", "4294967296"}); err == nil {
		t.Fatal("expected error for seed wider than 32 bits")
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("GLULXRAND_RANDOM_PORT", "not-a-port")
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}
