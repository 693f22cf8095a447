package game

// Rect is an axis-aligned bounding box in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Bottom returns the lower edge of the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Bullet is a projectile fired by the player or by an enemy. FromPlayer
// determines its collision targets; friendly fire cannot happen.
type Bullet struct {
	Rect       Rect
	VY         float64
	Damage     int
	FromPlayer bool
	Active     bool
}

// NewBullet creates a bullet centered horizontally on x with its tip at y.
func NewBullet(x, y, vy float64, fromPlayer bool) Bullet {
	return Bullet{
		Rect:       Rect{X: x - 2, Y: y - 8, W: 4, H: 12},
		VY:         vy,
		Damage:     1,
		FromPlayer: fromPlayer,
		Active:     true,
	}
}

// Update advances the bullet and deactivates it once fully off-screen.
func (b *Bullet) Update(dt float64, screenHeight float64) {
	b.Rect.Y += b.VY * dt
	if b.Rect.Bottom() < 0 || b.Rect.Y > screenHeight {
		b.Active = false
	}
}

// Player is the controllable ship at the bottom of the screen.
type Player struct {
	Rect          Rect
	Speed         float64
	Lives         int
	CooldownTimer float64
	GraceTimer    float64
	God           bool

	cooldown    float64
	graceTime   float64
	bulletSpeed float64
}

// NewPlayer creates the player centered at the bottom of the screen.
func NewPlayer(cfg Config) Player {
	p := Player{
		Rect: Rect{
			W: cfg.PlayerWidth,
			H: cfg.PlayerHeight,
		},
		Speed:       cfg.PlayerSpeed,
		Lives:       cfg.PlayerLives,
		cooldown:    cfg.PlayerCooldown,
		graceTime:   cfg.PlayerGraceTime,
		bulletSpeed: cfg.PlayerBulletSpeed,
	}
	p.ResetPosition(cfg)
	return p
}

// ResetPosition moves the player back to its spawn point.
func (p *Player) ResetPosition(cfg Config) {
	p.Rect.X = float64(cfg.ScreenWidth)/2 - p.Rect.W/2
	p.Rect.Y = float64(cfg.ScreenHeight) - 30 - p.Rect.H
}

// Update applies horizontal movement clamped to the screen and runs down the
// shot and grace timers.
func (p *Player) Update(in Input, dt float64, screenWidth float64) {
	move := 0.0
	if in.MoveLeft {
		move -= 1.0
	}
	if in.MoveRight {
		move += 1.0
	}
	p.Rect.X += move * p.Speed * dt
	if p.Rect.X < 10 {
		p.Rect.X = 10
	}
	if p.Rect.X+p.Rect.W > screenWidth-10 {
		p.Rect.X = screenWidth - 10 - p.Rect.W
	}
	if p.CooldownTimer > 0 {
		p.CooldownTimer -= dt
	}
	if p.GraceTimer > 0 {
		p.GraceTimer -= dt
	}
}

// TryShoot emits a bullet if the cooldown has elapsed and the in-flight cap
// allows another shot.
func (p *Player) TryShoot(inFlight, maxBullets int) (Bullet, bool) {
	if p.CooldownTimer > 0 || inFlight >= maxBullets {
		return Bullet{}, false
	}
	p.CooldownTimer = p.cooldown
	return NewBullet(p.Rect.CenterX(), p.Rect.Y-6, p.bulletSpeed, true), true
}

// Hit applies a hit to the player. It reports whether the hit landed; god
// mode and the post-hit grace window both deflect it. Lives never go below
// zero.
func (p *Player) Hit() bool {
	if p.God || p.GraceTimer > 0 {
		return false
	}
	if p.Lives > 0 {
		p.Lives--
	}
	p.GraceTimer = p.graceTime
	return true
}

// Boss is the bonus saucer that flies across the top of the screen. It never
// blocks wave completion.
type Boss struct {
	Rect   Rect
	VX     float64
	Points int
	Active bool
}

// NewBoss spawns the saucer just off the left edge.
func NewBoss(cfg Config) Boss {
	return Boss{
		Rect:   Rect{X: -80, Y: 50, W: 60, H: 24},
		VX:     cfg.BossSpeed,
		Points: cfg.BossPoints,
		Active: true,
	}
}

// Update moves the saucer and deactivates it once it leaves the screen.
func (b *Boss) Update(dt float64, screenWidth float64) {
	b.Rect.X += b.VX * dt
	if b.Rect.X > screenWidth+40 {
		b.Active = false
	}
}

// ShieldPiece is one destructible segment of a shield bunker.
type ShieldPiece struct {
	Rect Rect
	HP   int
}

// Absorb applies one hit's worth of damage and reports whether the piece was
// destroyed. Durability never goes below zero.
func (s *ShieldPiece) Absorb(damage int) bool {
	s.HP -= damage
	if s.HP < 0 {
		s.HP = 0
	}
	return s.HP == 0
}

// BuildShields lays out the shield bunkers. The bottom corners of each bunker
// are skipped to carve a small arch, matching the classic silhouette.
func BuildShields(cfg Config) []ShieldPiece {
	pieces := make([]ShieldPiece, 0, cfg.ShieldCount*cfg.ShieldRows*cfg.ShieldCols)
	marginX := 80.0
	spacing := (float64(cfg.ScreenWidth) - 2*marginX) / float64(cfg.ShieldCount-1)
	baseY := float64(cfg.ScreenHeight) - 180
	for i := 0; i < cfg.ShieldCount; i++ {
		left := marginX + float64(i)*spacing - float64(cfg.ShieldCols)*cfg.ShieldSegSize/2
		for r := 0; r < cfg.ShieldRows; r++ {
			for c := 0; c < cfg.ShieldCols; c++ {
				if r == cfg.ShieldRows-1 && (c == 0 || c == cfg.ShieldCols-1) {
					continue
				}
				pieces = append(pieces, ShieldPiece{
					Rect: Rect{
						X: left + float64(c)*cfg.ShieldSegSize,
						Y: baseY + float64(r)*cfg.ShieldSegSize,
						W: cfg.ShieldSegSize,
						H: cfg.ShieldSegSize,
					},
					HP: cfg.ShieldSegHP,
				})
			}
		}
	}
	return pieces
}
