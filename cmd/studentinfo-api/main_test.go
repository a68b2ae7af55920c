package main

import (
	"path/filepath"
	"testing"

	"github.com/aanand-mishra/studentinfo-api/internal/config"
)

func TestOpenStorage(t *testing.T) {
	cfg := &config.Config{Database: config.Database{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "main.db"),
	}}
	store, err := openStorage(cfg)
	if err != nil {
		t.Fatalf("openStorage: %v", err)
	}
	_ = store.Close()

	cfg.Database.Driver = "postgres"
	if _, err := openStorage(cfg); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{"dev", "staging", "prod", ""} {
		if setupLogger(env) == nil {
			t.Fatalf("nil logger for env %q", env)
		}
	}
}
