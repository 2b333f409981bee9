package app

import (
	"flag"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Player1Name != "Joel" || cfg.Player2Name != "Luis" {
		t.Fatalf("names = %q/%q", cfg.Player1Name, cfg.Player2Name)
	}
	if cfg.LongPress != 500*time.Millisecond {
		t.Fatalf("long press = %v, want 500ms", cfg.LongPress)
	}
	if got := cfg.StoreConfig()["path"]; got != "pingpong.db" {
		t.Fatalf("store path = %q", got)
	}
}

func TestEnvThenFlags(t *testing.T) {
	t.Setenv("PINGPONG_PLAYER1", "Ana")
	t.Setenv("PINGPONG_STORE", "memory")
	t.Setenv("PINGPONG_LONG_PRESS", "750ms")

	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-p2", "Bea", "-store", "sqlite"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Player1Name != "Ana" {
		t.Errorf("player 1 = %q, want Ana from env", cfg.Player1Name)
	}
	if cfg.Player2Name != "Bea" {
		t.Errorf("player 2 = %q, want Bea from flags", cfg.Player2Name)
	}
	if cfg.Store != "sqlite" {
		t.Errorf("store = %q, flag should win over env", cfg.Store)
	}
	if cfg.LongPress != 750*time.Millisecond {
		t.Errorf("long press = %v, want 750ms", cfg.LongPress)
	}
	if cfg.TPS != 60 {
		t.Errorf("tps = %d, unset values should keep defaults", cfg.TPS)
	}
}

func TestLoadEnvRejectsBadValue(t *testing.T) {
	t.Setenv("PINGPONG_SCALE", "huge")
	if err := NewConfig().LoadEnv(); err == nil {
		t.Fatalf("LoadEnv should fail on a non-numeric scale")
	}
}
