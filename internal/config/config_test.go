package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GOOGLE_API_KEY", "GEMINI_MODEL", "WATCHLIST",
		"HTTPS_PROXY", "SQLITE_PATH", "CRON_DAILY", "LOOKBACK_DAYS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvOverrides(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(cfg.Watchlist) != 1 || cfg.Watchlist[0] != "AAPL" {
		t.Errorf("watchlist = %v, want [AAPL]", cfg.Watchlist)
	}
	if cfg.Analysis.LookbackDays != 252 {
		t.Errorf("lookback = %d, want 252", cfg.Analysis.LookbackDays)
	}
	if cfg.Analysis.LevelsWindow != 60 {
		t.Errorf("levels window = %d, want 60", cfg.Analysis.LevelsWindow)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
	if cfg.Schedule.DailyCron == "" {
		t.Error("daily cron default missing")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnvOverrides(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
watchlist: [MSFT, NVDA]
analysis:
  lookback_days: 120
  levels_window: 30
gemini:
  api_key: test-key
report:
  enabled: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Watchlist) != 2 || cfg.Watchlist[0] != "MSFT" {
		t.Errorf("watchlist = %v", cfg.Watchlist)
	}
	if cfg.Analysis.LookbackDays != 120 {
		t.Errorf("lookback = %d, want 120", cfg.Analysis.LookbackDays)
	}
	if cfg.Analysis.LevelsWindow != 30 {
		t.Errorf("levels window = %d, want 30", cfg.Analysis.LevelsWindow)
	}
	if !cfg.Report.Enabled {
		t.Error("report.enabled not parsed")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnvOverrides(t)
	t.Setenv("WATCHLIST", "TSLA, AMD ,GOOG")
	t.Setenv("GOOGLE_API_KEY", "env-key")
	t.Setenv("LOOKBACK_DAYS", "90")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"TSLA", "AMD", "GOOG"}
	if len(cfg.Watchlist) != len(want) {
		t.Fatalf("watchlist = %v, want %v", cfg.Watchlist, want)
	}
	for i := range want {
		if cfg.Watchlist[i] != want[i] {
			t.Errorf("watchlist[%d] = %q, want %q", i, cfg.Watchlist[i], want[i])
		}
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("api key = %q", cfg.Gemini.APIKey)
	}
	if cfg.Analysis.LookbackDays != 90 {
		t.Errorf("lookback = %d, want 90", cfg.Analysis.LookbackDays)
	}
}

func TestValidate(t *testing.T) {
	clearEnvOverrides(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.Analysis.LookbackDays = 20
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for lookback below the indicator minimum")
	}
	cfg.Analysis.LookbackDays = 252

	cfg.Report.Enabled = true
	cfg.Gemini.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for enabled report without api key")
	}

	cfg.Watchlist = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty watchlist")
	}
}
