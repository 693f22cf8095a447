package game

import "testing"

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlayerMovementClampedToScreen(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)

	for i := 0; i < 60*10; i++ {
		p.Update(Input{MoveLeft: true}, 1.0/60.0, float64(cfg.ScreenWidth))
	}
	if p.Rect.X < 10 {
		t.Errorf("player left the screen: x=%v", p.Rect.X)
	}
	for i := 0; i < 60*10; i++ {
		p.Update(Input{MoveRight: true}, 1.0/60.0, float64(cfg.ScreenWidth))
	}
	if p.Rect.X+p.Rect.W > float64(cfg.ScreenWidth)-10 {
		t.Errorf("player left the screen: right=%v", p.Rect.X+p.Rect.W)
	}
}

func TestPlayerShootCooldown(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)

	if _, ok := p.TryShoot(0, cfg.PlayerMaxBullets); !ok {
		t.Fatal("fresh player could not shoot")
	}
	if _, ok := p.TryShoot(0, cfg.PlayerMaxBullets); ok {
		t.Error("cooldown ignored")
	}
	p.Update(Input{}, cfg.PlayerCooldown+0.01, float64(cfg.ScreenWidth))
	if _, ok := p.TryShoot(0, cfg.PlayerMaxBullets); !ok {
		t.Error("cooldown never expired")
	}
}

func TestPlayerShootRespectsInFlightCap(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)
	if _, ok := p.TryShoot(cfg.PlayerMaxBullets, cfg.PlayerMaxBullets); ok {
		t.Error("shot emitted past the in-flight cap")
	}
}

func TestPlayerLivesNeverNegative(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)
	p.Lives = 0
	p.GraceTimer = 0
	if p.Hit() && p.Lives < 0 {
		t.Errorf("lives went negative: %d", p.Lives)
	}
	if p.Lives < 0 {
		t.Errorf("lives went negative: %d", p.Lives)
	}
}

func TestBulletCulledOffScreen(t *testing.T) {
	b := NewBullet(100, 10, -500, true)
	for i := 0; i < 60 && b.Active; i++ {
		b.Update(1.0/60.0, 600)
	}
	if b.Active {
		t.Error("upward bullet never left the screen")
	}

	b = NewBullet(100, 590, 300, false)
	for i := 0; i < 60 && b.Active; i++ {
		b.Update(1.0/60.0, 600)
	}
	if b.Active {
		t.Error("downward bullet never left the screen")
	}
}

func TestBossDeactivatesOffScreen(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoss(cfg)
	for i := 0; i < 60*10 && b.Active; i++ {
		b.Update(1.0/60.0, float64(cfg.ScreenWidth))
	}
	if b.Active {
		t.Error("boss never flew off-screen")
	}
}

func TestShieldAbsorbClampsAtZero(t *testing.T) {
	s := ShieldPiece{HP: 2}
	if s.Absorb(1) {
		t.Error("piece destroyed early")
	}
	if !s.Absorb(1) {
		t.Error("piece not destroyed at zero")
	}
	if s.HP != 0 {
		t.Errorf("hp: got %d, want 0", s.HP)
	}
	s = ShieldPiece{HP: 1}
	s.Absorb(5)
	if s.HP < 0 {
		t.Errorf("hp went negative: %d", s.HP)
	}
}

func TestBuildShieldsLayout(t *testing.T) {
	cfg := DefaultConfig()
	pieces := BuildShields(cfg)

	// Each bunker skips its two bottom corners.
	want := cfg.ShieldCount * (cfg.ShieldRows*cfg.ShieldCols - 2)
	if len(pieces) != want {
		t.Errorf("pieces: got %d, want %d", len(pieces), want)
	}
	for i, p := range pieces {
		if p.HP != cfg.ShieldSegHP {
			t.Fatalf("piece %d hp: got %d, want %d", i, p.HP, cfg.ShieldSegHP)
		}
	}
}

func TestEnemyDamageClampsAtZero(t *testing.T) {
	e := NewEnemy(0, 0, EnemyTough)
	if e.Damage(1) {
		t.Error("tough enemy died in one hit")
	}
	if !e.Damage(5) {
		t.Error("enemy survived lethal damage")
	}
	if e.HP != 0 {
		t.Errorf("hp: got %d, want 0", e.HP)
	}
}

func TestVariantStats(t *testing.T) {
	tests := []struct {
		variant EnemyVariant
		hp      int
		points  int
	}{
		{EnemyCommon, 1, 10},
		{EnemyTough, 2, 20},
		{EnemyShooter, 1, 30},
	}
	for _, tt := range tests {
		cfg := GetVariantConfig(tt.variant)
		if cfg.HP != tt.hp || cfg.Points != tt.points {
			t.Errorf("%v: got hp=%d points=%d, want hp=%d points=%d",
				tt.variant, cfg.HP, cfg.Points, tt.hp, tt.points)
		}
	}
}
