package main

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("WARROOM_SHIPS", "")
	t.Setenv("WARROOM_SHOTS", "")
	t.Setenv("WARROOM_SEED", "")
	t.Setenv("WARROOM_LOG", "")

	cfg := loadConfig()
	if cfg.Ships != 4 {
		t.Errorf("Ships = %d, want 4", cfg.Ships)
	}
	if cfg.Shots != 1 {
		t.Errorf("Shots = %d, want 1", cfg.Shots)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.LogFile != "warroom.log" {
		t.Errorf("LogFile = %q, want warroom.log", cfg.LogFile)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("WARROOM_SHIPS", "7")
	t.Setenv("WARROOM_SHOTS", "25")
	t.Setenv("WARROOM_SEED", "99")
	t.Setenv("WARROOM_LOG", "/tmp/mission.log")

	cfg := loadConfig()
	if cfg.Ships != 7 {
		t.Errorf("Ships = %d, want 7", cfg.Ships)
	}
	if cfg.Shots != 25 {
		t.Errorf("Shots = %d, want 25", cfg.Shots)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if cfg.LogFile != "/tmp/mission.log" {
		t.Errorf("LogFile = %q, want /tmp/mission.log", cfg.LogFile)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("WARROOM_SHIPS", "0")
	t.Setenv("WARROOM_SHOTS", "-3")
	t.Setenv("WARROOM_SEED", "not-a-number")
	t.Setenv("WARROOM_LOG", "")

	cfg := loadConfig()
	if cfg.Ships != 4 {
		t.Errorf("Ships = %d, want default 4 for out-of-range value", cfg.Ships)
	}
	if cfg.Shots != 1 {
		t.Errorf("Shots = %d, want default 1 for negative value", cfg.Shots)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want default 0 for garbage value", cfg.Seed)
	}
}
