package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenWidth != 800 || cfg.ScreenHeight != 600 {
		t.Errorf("screen: got %dx%d, want 800x600", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.PlayerLives != 3 {
		t.Errorf("lives: got %d, want 3", cfg.PlayerLives)
	}
	if cfg.EnemyRows*cfg.EnemyCols != 48 {
		t.Errorf("grid: got %dx%d, want 6x8", cfg.EnemyRows, cfg.EnemyCols)
	}
	if cfg.ComboWindow != 1.0 {
		t.Errorf("combo window: got %v, want 1.0", cfg.ComboWindow)
	}
	if cfg.DefenseLine() != 550 {
		t.Errorf("defense line: got %v, want 550", cfg.DefenseLine())
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("missing file did not yield the defaults")
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "playerLives: 5\nenemyRows: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PlayerLives != 5 {
		t.Errorf("lives: got %d, want 5", cfg.PlayerLives)
	}
	if cfg.EnemyRows != 4 {
		t.Errorf("rows: got %d, want 4", cfg.EnemyRows)
	}
	// Everything else stays at the defaults.
	if cfg.EnemyCols != 8 {
		t.Errorf("cols: got %d, want 8", cfg.EnemyCols)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("bad YAML did not report an error")
	}
	if cfg != DefaultConfig() {
		t.Error("bad YAML did not fall back to the defaults")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := Config{}
	cfg.Validate()
	if cfg.PlayerLives < 1 {
		t.Errorf("lives not clamped: %d", cfg.PlayerLives)
	}
	if cfg.ComboCap < 1 {
		t.Errorf("combo cap not clamped: %d", cfg.ComboCap)
	}
	if cfg.WaveSpeedMult < 1.0 {
		t.Errorf("wave speed multiplier not clamped: %v", cfg.WaveSpeedMult)
	}
}
