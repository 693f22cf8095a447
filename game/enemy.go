package game

import "math/rand"

// EnemyVariant identifies one of the closed set of enemy kinds.
type EnemyVariant int

const (
	EnemyCommon EnemyVariant = iota
	EnemyTough
	EnemyShooter
)

// String returns the variant name for wave stats and logs.
func (v EnemyVariant) String() string {
	switch v {
	case EnemyCommon:
		return "common"
	case EnemyTough:
		return "tough"
	case EnemyShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// VariantConfig holds the per-variant stats.
type VariantConfig struct {
	Variant EnemyVariant
	HP      int
	Points  int
}

// GetVariantConfig returns the stats for an enemy variant.
func GetVariantConfig(v EnemyVariant) VariantConfig {
	switch v {
	case EnemyTough:
		return VariantConfig{Variant: EnemyTough, HP: 2, Points: 20}
	case EnemyShooter:
		return VariantConfig{Variant: EnemyShooter, HP: 1, Points: 30}
	default:
		return VariantConfig{Variant: EnemyCommon, HP: 1, Points: 10}
	}
}

// rollVariant picks a variant for a fresh grid slot. Shooters are rare and
// tough enemies uncommon on wave 1; both ratios climb with the wave number.
func rollVariant(rng *rand.Rand, wave int) EnemyVariant {
	shooterP := 0.05 + 0.01*float64(wave-1)
	if shooterP > 0.25 {
		shooterP = 0.25
	}
	toughP := 0.25 + 0.02*float64(wave-1)
	if toughP > 0.45 {
		toughP = 0.45
	}
	p := rng.Float64()
	switch {
	case p < shooterP:
		return EnemyShooter
	case p < shooterP+toughP:
		return EnemyTough
	default:
		return EnemyCommon
	}
}

// Enemy is one grid invader.
type Enemy struct {
	Rect      Rect
	Variant   EnemyVariant
	HP        int
	Points    int
	FireTimer float64
	HitFlash  float64
}

// NewEnemy creates an enemy of the given variant at a grid position.
func NewEnemy(x, y float64, v EnemyVariant) Enemy {
	cfg := GetVariantConfig(v)
	return Enemy{
		Rect:    Rect{X: x, Y: y, W: 44, H: 28},
		Variant: v,
		HP:      cfg.HP,
		Points:  cfg.Points,
	}
}

// Damage applies damage and reports whether the enemy was destroyed. Hit
// points never go below zero.
func (e *Enemy) Damage(amount int) bool {
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
	e.HitFlash = 0.1
	return e.HP == 0
}
