package game

import (
	"math"
	"math/rand"
)

// WaveStats is a read-only snapshot of the wave director's state, used by the
// F1 debug action and the HUD.
type WaveStats struct {
	Wave      int
	Remaining int
	Speed     float64
	FireRate  float64
}

// WaveDirector owns the enemy grid: spawning, the horizontal sweep with
// step-down at the screen edges, shooter fire timing, the per-kill speed-up,
// and wave completion. It reports an enemy crossing the defense line as a
// session-fatal event, independent of bullet collisions.
type WaveDirector struct {
	Wave    int
	Enemies []Enemy

	cfg Config
	rng *rand.Rand

	dir        float64
	baseSpeed  float64
	fireRate   float64
	killFactor float64
	totalSpawn int
}

// NewWaveDirector creates the director and spawns the first wave.
func NewWaveDirector(cfg Config, rng *rand.Rand) *WaveDirector {
	w := &WaveDirector{cfg: cfg, rng: rng}
	w.StartWave(1)
	return w
}

// StartWave populates the grid for the given wave number. Speed and fire rate
// scale up with the wave so difficulty never decreases.
func (w *WaveDirector) StartWave(wave int) {
	w.Wave = wave
	w.dir = 1
	w.baseSpeed = w.cfg.EnemyBaseSpeed * math.Pow(w.cfg.WaveSpeedMult, float64(wave-1))
	w.fireRate = w.cfg.EnemyFireRate * math.Pow(w.cfg.WaveFireMult, float64(wave-1))
	w.killFactor = 1.0

	const (
		startX   = 60.0
		startY   = 70.0
		spacingX = 70.0
		spacingY = 50.0
	)
	w.totalSpawn = w.cfg.EnemyRows * w.cfg.EnemyCols
	w.Enemies = make([]Enemy, 0, w.totalSpawn)
	for row := 0; row < w.cfg.EnemyRows; row++ {
		for col := 0; col < w.cfg.EnemyCols; col++ {
			x := startX + float64(col)*spacingX
			y := startY + float64(row)*spacingY
			e := NewEnemy(x, y, rollVariant(w.rng, wave))
			if e.Variant == EnemyShooter {
				e.FireTimer = w.shotInterval()
			}
			w.Enemies = append(w.Enemies, e)
		}
	}
}

// EnemiesRemaining returns the live enemy count.
func (w *WaveDirector) EnemiesRemaining() int {
	return len(w.Enemies)
}

// Completed reports whether the grid is empty. Enemy bullets still in flight
// do not delay completion.
func (w *WaveDirector) Completed() bool {
	return len(w.Enemies) == 0
}

// Speed returns the current effective march speed: the wave base speed scaled
// by the per-kill factor and the thinning acceleration.
func (w *WaveDirector) Speed() float64 {
	aliveRatio := 1.0
	if w.totalSpawn > 0 {
		aliveRatio = float64(len(w.Enemies)) / float64(w.totalSpawn)
	}
	thinning := 1.0 + w.cfg.ThinningAccel*(1.0-aliveRatio)
	return w.baseSpeed * w.killFactor * thinning
}

// Stats returns a read-only view of the wave state.
func (w *WaveDirector) Stats() WaveStats {
	return WaveStats{
		Wave:      w.Wave,
		Remaining: len(w.Enemies),
		Speed:     w.Speed(),
		FireRate:  w.fireRate,
	}
}

// Update advances the grid: horizontal march, step-down-and-reverse at the
// screen margins, and hit-flash decay.
func (w *WaveDirector) Update(dt float64) {
	if len(w.Enemies) == 0 {
		return
	}
	dx := w.dir * w.Speed() * dt
	for i := range w.Enemies {
		w.Enemies[i].Rect.X += dx
		if w.Enemies[i].HitFlash > 0 {
			w.Enemies[i].HitFlash -= dt
		}
	}
	left, right := w.bounds()
	hitEdge := (left <= 20 && w.dir < 0) || (right >= float64(w.cfg.ScreenWidth)-20 && w.dir > 0)
	if hitEdge {
		w.dir *= -1
		for i := range w.Enemies {
			w.Enemies[i].Rect.Y += w.cfg.EnemyStepDown
		}
	}
}

// bounds returns the leftmost and rightmost extent of the live grid.
func (w *WaveDirector) bounds() (float64, float64) {
	left := math.Inf(1)
	right := math.Inf(-1)
	for i := range w.Enemies {
		if w.Enemies[i].Rect.X < left {
			left = w.Enemies[i].Rect.X
		}
		if r := w.Enemies[i].Rect.X + w.Enemies[i].Rect.W; r > right {
			right = r
		}
	}
	return left, right
}

// TryFire runs the Shooter fire timers. A Shooter whose timer expires emits
// an enemy bullet and resets to a new randomized interval; the grid-wide
// in-flight cap drops shots that would exceed it (the timer still resets).
func (w *WaveDirector) TryFire(dt float64, enemyBulletsInFlight int) []Bullet {
	var out []Bullet
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Variant != EnemyShooter {
			continue
		}
		e.FireTimer -= dt
		if e.FireTimer > 0 {
			continue
		}
		e.FireTimer = w.shotInterval()
		if enemyBulletsInFlight+len(out) >= w.cfg.EnemyMaxBullets {
			continue
		}
		out = append(out, NewBullet(e.Rect.CenterX(), e.Rect.Bottom()+6, w.cfg.EnemyBulletSpeed, false))
	}
	return out
}

// shotInterval samples the next Shooter cooldown: 0.5x to 1.5x the baseline
// period, shortened as the per-wave fire rate scales up.
func (w *WaveDirector) shotInterval() float64 {
	base := 1.0 / w.fireRate
	return base * (0.5 + w.rng.Float64())
}

// RemoveAt deletes the enemy at index i and applies the per-kill speed-up.
// The factor only ever grows within a wave.
func (w *WaveDirector) RemoveAt(i int) {
	if i < 0 || i >= len(w.Enemies) {
		return
	}
	w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
	w.killFactor += w.cfg.KillSpeedIncrement
}

// BreachedDefenseLine reports whether any enemy has crossed the defense line.
func (w *WaveDirector) BreachedDefenseLine(line float64) bool {
	for i := range w.Enemies {
		if w.Enemies[i].Rect.Bottom() >= line {
			return true
		}
	}
	return false
}

// Skip empties the grid, forcing wave completion. Debug hook.
func (w *WaveDirector) Skip() {
	w.Enemies = w.Enemies[:0]
}
