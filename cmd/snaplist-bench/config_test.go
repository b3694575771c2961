package main

import (
	"strings"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultBenchConfig()
	s, err := cfg.EncodeString()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := ReadConfigAndCheck(strings.NewReader(s))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, got)
	}
}

func TestConfigRejectsNegativeFields(t *testing.T) {
	cfg := DefaultBenchConfig()
	cfg.Producers = -1
	if err := cfg.CheckValid(); err == nil {
		t.Fatal("expected error for negative producers")
	}
}
