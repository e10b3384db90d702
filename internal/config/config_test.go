package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath == "" || cfg.OutputDir == "" {
		t.Fatalf("empty defaults: %+v", cfg)
	}
	if cfg.JavaBin != "java" {
		t.Fatalf("JavaBin = %q", cfg.JavaBin)
	}
	if cfg.TabulaTimeoutMs != 120000 {
		t.Fatalf("TabulaTimeoutMs = %d", cfg.TabulaTimeoutMs)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_PATH", "/var/lib/scanpdf/scanpdf.db")
	t.Setenv("TABULA_TIMEOUT_MS", "5000")
	t.Setenv("DEFAULT_PRICELIST", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/var/lib/scanpdf/scanpdf.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TabulaTimeoutMs != 5000 {
		t.Fatalf("TabulaTimeoutMs = %d", cfg.TabulaTimeoutMs)
	}
	if cfg.DefaultPricelist != "2" {
		t.Fatalf("DefaultPricelist = %q", cfg.DefaultPricelist)
	}
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("TABULA_TIMEOUT_MS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TabulaTimeoutMs != 120000 {
		t.Fatalf("TabulaTimeoutMs = %d, want fallback", cfg.TabulaTimeoutMs)
	}
}
