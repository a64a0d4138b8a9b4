package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	if th.TowerDangerRadius != 900 || th.IsolationDistance != 2500 {
		t.Errorf("death radii = %v, %v", th.TowerDangerRadius, th.IsolationDistance)
	}
	if th.GankAssists != 2 || th.GoldDeficit != 1000 || th.LevelDeficit != 1 {
		t.Errorf("death thresholds = %+v", th)
	}
	if th.CSCheckpointMinutes != 5 || th.CSLastCheckpoint != 30 || th.CSDeficit != 15 || th.CSDeficitStep != 10 {
		t.Errorf("cs thresholds = %+v", th)
	}
	if th.VisionWindowMinutes != 5 || th.VisionStartMinute != 10 || th.NonSupportVisionScale != 0.5 {
		t.Errorf("vision thresholds = %+v", th)
	}
	if th.ObjectiveProximity != 4000 || th.RespawnLate != 50*time.Second {
		t.Errorf("objective thresholds = %+v", th)
	}
	if th.MaxTips != 5 || th.MaxRelated != 3 || th.MaxRoleTips != 2 {
		t.Errorf("tip limits = %+v", th)
	}
}

func TestDefaultThresholdsIgnoreEnvironment(t *testing.T) {
	t.Setenv("LOLCOACH_GANK_ASSISTS", "4")
	if got := DefaultThresholds().GankAssists; got != 2 {
		t.Errorf("GankAssists = %d, want the default 2", got)
	}
}

func TestThresholdsFingerprint(t *testing.T) {
	a, b := DefaultThresholds(), DefaultThresholds()
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("equal thresholds should share a fingerprint")
	}
	if len(a.Fingerprint()) != 12 {
		t.Errorf("fingerprint = %q", a.Fingerprint())
	}
	b.IsolationDistance = 3000
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("changed thresholds should change the fingerprint")
	}
}

func TestLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LOLCOACH_DB", "")
	t.Setenv("LOLCOACH_MATCH_DIR", "")
	t.Setenv("LOLCOACH_GANK_ASSISTS", "3")
	t.Setenv("LOLCOACH_RESPAWN_MID", "40s")
	t.Setenv("LOLCOACH_CACHE_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != filepath.Join(home, ".lolcoach", "metrics.db") {
		t.Errorf("DBPath = %s", cfg.DBPath)
	}
	if cfg.MatchDir != filepath.Join(home, ".lolcoach", "matches") {
		t.Errorf("MatchDir = %s", cfg.MatchDir)
	}
	if cfg.Thresholds.GankAssists != 3 || cfg.Thresholds.RespawnMid != 40*time.Second {
		t.Errorf("threshold overrides not applied: %+v", cfg.Thresholds)
	}
	if cfg.Thresholds.GoldDeficit != 1000 {
		t.Errorf("GoldDeficit = %d", cfg.Thresholds.GoldDeficit)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
}

func TestLoadRejectsBadValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOLCOACH_CS_DEFICIT", "lots")
	if _, err := Load(); err == nil {
		t.Error("expected an error for a non-numeric threshold")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
