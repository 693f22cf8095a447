package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all gameplay tuning constants. Values can be overridden from a
// YAML file so the game can be rebalanced without recompiling.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screenHeight"`

	// PlayerSpeed is the horizontal player speed in pixels per second
	PlayerSpeed float64 `yaml:"playerSpeed"`

	// PlayerWidth and PlayerHeight define the player hitbox
	PlayerWidth  float64 `yaml:"playerWidth"`
	PlayerHeight float64 `yaml:"playerHeight"`

	// PlayerCooldown is the minimum time between player shots in seconds
	PlayerCooldown float64 `yaml:"playerCooldown"`

	// PlayerMaxBullets caps the number of player bullets in flight
	PlayerMaxBullets int `yaml:"playerMaxBullets"`

	// PlayerLives is the starting life count
	PlayerLives int `yaml:"playerLives"`

	// PlayerGraceTime is the invulnerability window after a hit in seconds
	PlayerGraceTime float64 `yaml:"playerGraceTime"`

	// EnemyRows and EnemyCols define the wave grid dimensions
	EnemyRows int `yaml:"enemyRows"`
	EnemyCols int `yaml:"enemyCols"`

	// EnemyBaseSpeed is the wave-1 horizontal march speed in pixels per second
	EnemyBaseSpeed float64 `yaml:"enemyBaseSpeed"`

	// EnemyStepDown is how far the grid descends when it reaches a screen edge
	EnemyStepDown float64 `yaml:"enemyStepDown"`

	// EnemyFireRate is the wave-1 baseline grid fire rate in shots per second
	EnemyFireRate float64 `yaml:"enemyFireRate"`

	// EnemyMaxBullets caps the number of enemy bullets in flight
	EnemyMaxBullets int `yaml:"enemyMaxBullets"`

	// PlayerBulletSpeed and EnemyBulletSpeed are vertical bullet velocities.
	// Negative is up (player bullets), positive is down (enemy bullets).
	PlayerBulletSpeed float64 `yaml:"playerBulletSpeed"`
	EnemyBulletSpeed  float64 `yaml:"enemyBulletSpeed"`

	// BossDelayMin and BossDelayMax bound the random fly-by timer in seconds
	BossDelayMin float64 `yaml:"bossDelayMin"`
	BossDelayMax float64 `yaml:"bossDelayMax"`

	// BossSpeed is the fly-by horizontal speed in pixels per second
	BossSpeed float64 `yaml:"bossSpeed"`

	// BossPoints is the bonus score for destroying the boss
	BossPoints int `yaml:"bossPoints"`

	// ShieldCount is the number of shield bunkers
	ShieldCount int `yaml:"shieldCount"`

	// ShieldRows and ShieldCols define the segment layout within one bunker
	ShieldRows int `yaml:"shieldRows"`
	ShieldCols int `yaml:"shieldCols"`

	// ShieldSegSize is the pixel size of one shield segment
	ShieldSegSize float64 `yaml:"shieldSegSize"`

	// ShieldSegHP is the durability of one shield segment
	ShieldSegHP int `yaml:"shieldSegHP"`

	// WaveSpeedMult scales the grid speed per wave (compounding)
	WaveSpeedMult float64 `yaml:"waveSpeedMult"`

	// WaveFireMult scales the grid fire rate per wave (compounding)
	WaveFireMult float64 `yaml:"waveFireMult"`

	// WaveDelay is the pause between clearing a wave and spawning the next
	WaveDelay float64 `yaml:"waveDelay"`

	// ThinningAccel scales how much the grid speeds up as it empties.
	// Effective speed factor is 1 + ThinningAccel*(1 - alive/total).
	ThinningAccel float64 `yaml:"thinningAccel"`

	// KillSpeedIncrement is added to the grid speed multiplier per enemy killed
	KillSpeedIncrement float64 `yaml:"killSpeedIncrement"`

	// ComboWindow is the time after a kill during which the next kill
	// continues the multiplier streak, in seconds
	ComboWindow float64 `yaml:"comboWindow"`

	// ComboCap is the maximum combo multiplier
	ComboCap int `yaml:"comboCap"`

	// DefenseLineOffset is the distance of the loss line from the bottom edge
	DefenseLineOffset float64 `yaml:"defenseLineOffset"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:        800,
		ScreenHeight:       600,
		PlayerSpeed:        300.0,
		PlayerWidth:        50.0,
		PlayerHeight:       30.0,
		PlayerCooldown:     0.25,
		PlayerMaxBullets:   3,
		PlayerLives:        3,
		PlayerGraceTime:    1.5,
		EnemyRows:          6,
		EnemyCols:          8,
		EnemyBaseSpeed:     72.0,
		EnemyStepDown:      20.0,
		EnemyFireRate:      0.28,
		EnemyMaxBullets:    6,
		PlayerBulletSpeed:  -500.0,
		EnemyBulletSpeed:   300.0,
		BossDelayMin:       20.0,
		BossDelayMax:       30.0,
		BossSpeed:          200.0,
		BossPoints:         100,
		ShieldCount:        4,
		ShieldRows:         3,
		ShieldCols:         6,
		ShieldSegSize:      12.0,
		ShieldSegHP:        3,
		WaveSpeedMult:      1.10,
		WaveFireMult:       1.05,
		WaveDelay:          1.2,
		ThinningAccel:      0.6,
		KillSpeedIncrement: 0.02,
		ComboWindow:        1.0,
		ComboCap:           10,
		DefenseLineOffset:  50.0,
	}
}

// LoadConfig reads a YAML tuning file and overlays it on the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate clamps values that would break the game loop.
func (c *Config) Validate() {
	if c.ScreenWidth < 320 {
		c.ScreenWidth = 320
	}
	if c.ScreenHeight < 240 {
		c.ScreenHeight = 240
	}
	if c.EnemyRows < 1 {
		c.EnemyRows = 1
	}
	if c.EnemyCols < 1 {
		c.EnemyCols = 1
	}
	if c.PlayerLives < 1 {
		c.PlayerLives = 1
	}
	if c.PlayerMaxBullets < 1 {
		c.PlayerMaxBullets = 1
	}
	if c.ComboCap < 1 {
		c.ComboCap = 1
	}
	if c.ComboWindow <= 0 {
		c.ComboWindow = 1.0
	}
	if c.WaveSpeedMult < 1.0 {
		c.WaveSpeedMult = 1.0
	}
	if c.WaveFireMult < 1.0 {
		c.WaveFireMult = 1.0
	}
	if c.BossDelayMax < c.BossDelayMin {
		c.BossDelayMax = c.BossDelayMin
	}
}

// DefenseLine returns the vertical coordinate below which an invading enemy
// ends the run.
func (c Config) DefenseLine() float64 {
	return float64(c.ScreenHeight) - c.DefenseLineOffset
}
