package game

import (
	"math/rand"
	"sort"
)

// Cue identifies a sound effect the session asks the audio collaborator to
// play. The session never touches the audio device.
type Cue int

const (
	CueShoot Cue = iota
	CueEnemyShoot
	CueExplosion
	CueShieldBreak
	CuePlayerHit
	CueWaveStart
	CueGameOver
	CueHighscore
)

// HitEvent is a render-facing position where something was destroyed or hit
// this tick. The renderer uses it for particle bursts; it has no effect on
// gameplay.
type HitEvent struct {
	X, Y   float64
	Kind   EventKind
	Killed bool
}

// EndReason says why a run ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndOutOfLives
	EndDefenseBreached
)

// Session is one run of the game: the player, all bullets, the wave director,
// the optional boss, the shields, the combo tracker and the score. Advance
// runs exactly one fixed-timestep tick; nothing here blocks or touches
// rendering, audio or persistence.
type Session struct {
	Player  Player
	Bullets []Bullet
	Waves   *WaveDirector
	Boss    *Boss
	Shields []ShieldPiece
	Combo   ComboTracker
	Score   int

	cfg Config
	rng *rand.Rand

	bossTimer float64
	waveDelay float64
	reason    EndReason

	cues []Cue
	hits []HitEvent
}

// NewSession creates a fresh run at wave 1.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	s := &Session{
		Player:  NewPlayer(cfg),
		Waves:   NewWaveDirector(cfg, rng),
		Shields: BuildShields(cfg),
		Combo:   NewComboTracker(cfg.ComboWindow, cfg.ComboCap),
		cfg:     cfg,
		rng:     rng,
	}
	s.bossTimer = s.randBossDelay()
	return s
}

func (s *Session) randBossDelay() float64 {
	return s.cfg.BossDelayMin + s.rng.Float64()*(s.cfg.BossDelayMax-s.cfg.BossDelayMin)
}

// Over reports whether the run has ended and why.
func (s *Session) Over() (bool, EndReason) {
	return s.reason != EndNone, s.reason
}

// DrainCues returns and clears the sound cues emitted since the last drain.
func (s *Session) DrainCues() []Cue {
	out := s.cues
	s.cues = nil
	return out
}

// DrainHits returns and clears the hit positions emitted since the last drain.
func (s *Session) DrainHits() []HitEvent {
	out := s.hits
	s.hits = nil
	return out
}

// ToggleGodMode flips the debug invulnerability flag and returns the new
// value. It is a player flag, not a scene.
func (s *Session) ToggleGodMode() bool {
	s.Player.God = !s.Player.God
	return s.Player.God
}

// Advance runs one tick: input and player update, wave director, boss timer,
// bullet movement, collision resolution, event application and scoring, combo
// idle decay, and finally the loss checks. The order is fixed; every stage
// sees the stage before it fully applied.
func (s *Session) Advance(in Input, dt float64) {
	if s.reason != EndNone {
		return
	}

	// Player movement and shooting.
	s.Player.Update(in, dt, float64(s.cfg.ScreenWidth))
	if in.Shoot {
		if b, ok := s.Player.TryShoot(s.countBullets(true), s.cfg.PlayerMaxBullets); ok {
			s.Bullets = append(s.Bullets, b)
			s.cues = append(s.cues, CueShoot)
		}
	}
	if in.SkipWave {
		s.Waves.Skip()
	}

	// Grid march and enemy fire.
	if s.waveDelay <= 0 {
		s.Waves.Update(dt)
		for _, b := range s.Waves.TryFire(dt, s.countBullets(false)) {
			s.Bullets = append(s.Bullets, b)
			s.cues = append(s.cues, CueEnemyShoot)
		}
	}

	// Boss fly-by on a randomized schedule. The boss never blocks wave
	// completion.
	if s.Boss == nil {
		s.bossTimer -= dt
		if s.bossTimer <= 0 {
			b := NewBoss(s.cfg)
			s.Boss = &b
			s.bossTimer = s.randBossDelay()
		}
	} else {
		s.Boss.Update(dt, float64(s.cfg.ScreenWidth))
		if !s.Boss.Active {
			s.Boss = nil
		}
	}

	// Bullet movement and off-screen cull.
	for i := range s.Bullets {
		s.Bullets[i].Update(dt, float64(s.cfg.ScreenHeight))
	}

	// Collisions over the stable snapshot, then removals.
	events := ResolveCollisions(CollisionSnapshot{
		Bullets: s.Bullets,
		Shields: s.Shields,
		Enemies: s.Waves.Enemies,
		Boss:    s.Boss,
		Player:  s.Player.Rect,
	})
	s.applyEvents(events)
	s.compactBullets()

	// Combo idle decay runs after scoring so a kill this tick counts first.
	s.Combo.Tick(dt)

	// Wave completion and the transition delay before the next spawn.
	if s.Waves.Completed() {
		if s.waveDelay <= 0 {
			s.waveDelay = s.cfg.WaveDelay
		} else {
			s.waveDelay -= dt
			if s.waveDelay <= 0 {
				s.Waves.StartWave(s.Waves.Wave + 1)
				s.cues = append(s.cues, CueWaveStart)
				s.waveDelay = 0
			}
		}
	}

	// Loss conditions. An enemy past the defense line ends the run no matter
	// how many lives remain.
	if s.Waves.BreachedDefenseLine(s.cfg.DefenseLine()) {
		s.reason = EndDefenseBreached
		s.cues = append(s.cues, CueGameOver)
		return
	}
	if s.Player.Lives == 0 {
		s.reason = EndOutOfLives
		s.cues = append(s.cues, CueGameOver)
	}
}

// Snapshot is the read-only view of one tick handed to the renderer. The
// renderer never reaches back into the session.
type Snapshot struct {
	Player      Rect
	PlayerGrace float64
	God         bool
	Lives       int
	Bullets     []Bullet
	Enemies     []Enemy
	Boss        *Boss
	Shields     []ShieldPiece
	Score       int
	Multiplier  int
	Wave        int
}

// Snapshot captures the current render state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Player:      s.Player.Rect,
		PlayerGrace: s.Player.GraceTimer,
		God:         s.Player.God,
		Lives:       s.Player.Lives,
		Bullets:     s.Bullets,
		Enemies:     s.Waves.Enemies,
		Boss:        s.Boss,
		Shields:     s.Shields,
		Score:       s.Score,
		Multiplier:  s.Combo.Multiplier,
		Wave:        s.Waves.Wave,
	}
}

// applyEvents consumes the tick's collision events exactly once each:
// damage, destruction, scoring and cues. Removals happen here, after the
// scan, never during it.
func (s *Session) applyEvents(events []CollisionEvent) {
	var deadEnemies []int
	var deadShields []int

	for _, ev := range events {
		s.Bullets[ev.Bullet].Active = false
		switch ev.Kind {
		case BulletHitsShield:
			piece := &s.Shields[ev.Target]
			if piece.HP == 0 {
				break // already destroyed by an earlier bullet this tick
			}
			if piece.Absorb(s.Bullets[ev.Bullet].Damage) {
				deadShields = append(deadShields, ev.Target)
				s.cues = append(s.cues, CueShieldBreak)
			}
			s.hits = append(s.hits, HitEvent{X: ev.X, Y: ev.Y, Kind: ev.Kind})
		case BulletHitsEnemy:
			enemy := &s.Waves.Enemies[ev.Target]
			if enemy.HP == 0 {
				break
			}
			killed := enemy.Damage(s.Bullets[ev.Bullet].Damage)
			if killed {
				s.Score += s.Combo.RecordKill(enemy.Points)
				deadEnemies = append(deadEnemies, ev.Target)
				s.cues = append(s.cues, CueExplosion)
			}
			s.hits = append(s.hits, HitEvent{X: ev.X, Y: ev.Y, Kind: ev.Kind, Killed: killed})
		case BulletHitsBoss:
			if s.Boss != nil && s.Boss.Active {
				s.Score += s.Combo.RecordKill(s.Boss.Points)
				s.Boss = nil
				s.cues = append(s.cues, CueExplosion)
				s.hits = append(s.hits, HitEvent{X: ev.X, Y: ev.Y, Kind: ev.Kind, Killed: true})
			}
		case BulletHitsPlayer:
			if s.Player.Hit() {
				s.cues = append(s.cues, CuePlayerHit)
				s.hits = append(s.hits, HitEvent{X: ev.X, Y: ev.Y, Kind: ev.Kind})
			}
		}
	}

	// Remove destroyed enemies and shield pieces, highest index first so the
	// remaining indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(deadEnemies)))
	for _, i := range deadEnemies {
		s.Waves.RemoveAt(i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(deadShields)))
	for _, i := range deadShields {
		s.Shields = append(s.Shields[:i], s.Shields[i+1:]...)
	}
}

// compactBullets drops inactive bullets in place.
func (s *Session) compactBullets() {
	alive := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Active {
			alive = append(alive, b)
		}
	}
	s.Bullets = alive
}

// countBullets counts in-flight bullets for one side.
func (s *Session) countBullets(fromPlayer bool) int {
	n := 0
	for i := range s.Bullets {
		if s.Bullets[i].Active && s.Bullets[i].FromPlayer == fromPlayer {
			n++
		}
	}
	return n
}
