package game

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Palette, matching the classic dark-blue look.
var (
	colorBackground   = color.NRGBA{R: 13, G: 16, B: 33, A: 255}
	colorUI           = color.NRGBA{R: 230, G: 235, B: 255, A: 255}
	colorPlayer       = color.NRGBA{R: 240, G: 240, B: 255, A: 255}
	colorEnemyCommon  = color.NRGBA{R: 120, G: 200, B: 255, A: 255}
	colorEnemyTough   = color.NRGBA{R: 255, G: 160, B: 120, A: 255}
	colorEnemyShooter = color.NRGBA{R: 180, G: 255, B: 160, A: 255}
	colorBoss         = color.NRGBA{R: 255, G: 80, B: 140, A: 255}
	colorBulletPlayer = color.NRGBA{R: 255, G: 255, B: 180, A: 255}
	colorBulletEnemy  = color.NRGBA{R: 255, G: 120, B: 120, A: 255}
	colorShield       = color.NRGBA{R: 90, G: 200, B: 160, A: 255}
	colorShieldDamage = color.NRGBA{R: 180, G: 110, B: 110, A: 255}
	colorDim          = color.NRGBA{R: 80, G: 90, B: 120, A: 255}
	colorHighlight    = color.NRGBA{R: 160, G: 200, B: 255, A: 255}
	colorLives        = color.NRGBA{R: 255, G: 100, B: 120, A: 255}
	colorFlash        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer draws the per-tick snapshot plus the purely cosmetic layer:
// particles and screen shake. It never mutates game state.
type Renderer struct {
	cfg  Config
	face text.Face
	rng  *rand.Rand

	shakeTimer float64
	shakeMag   float64
}

// NewRenderer creates a renderer for the given screen configuration.
func NewRenderer(cfg Config, rng *rand.Rand) *Renderer {
	return &Renderer{
		cfg:  cfg,
		face: text.NewGoXFace(basicfont.Face7x13),
		rng:  rng,
	}
}

// Shake kicks the screen shake effect, keeping the stronger of the current
// and requested magnitudes.
func (r *Renderer) Shake(mag float64) {
	r.shakeTimer = 0.28
	if mag > r.shakeMag {
		r.shakeMag = mag
	}
}

// Update decays the shake effect.
func (r *Renderer) Update(dt float64) {
	if r.shakeTimer > 0 {
		r.shakeTimer -= dt
		r.shakeMag -= 60 * dt
		if r.shakeMag < 0 {
			r.shakeMag = 0
		}
	}
}

func (r *Renderer) offset() (float64, float64) {
	if r.shakeTimer <= 0 || r.shakeMag <= 0 {
		return 0, 0
	}
	return (r.rng.Float64()*2 - 1) * r.shakeMag, (r.rng.Float64()*2 - 1) * r.shakeMag
}

// DrawPlaying renders the play field, HUD and particles.
func (r *Renderer) DrawPlaying(screen *ebiten.Image, snap Snapshot, ps *ParticleSystem, best int) {
	screen.Fill(colorBackground)
	ox, oy := r.offset()

	for i := range snap.Shields {
		piece := &snap.Shields[i]
		clr := colorShield
		if piece.HP < 2 {
			clr = colorShieldDamage
		}
		fillRect(screen, piece.Rect, ox, oy, clr)
	}

	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		clr := variantColor(e.Variant)
		if e.HitFlash > 0 {
			clr = colorFlash
		}
		fillRect(screen, e.Rect, ox, oy, clr)
		// Eyes, so the invaders read as creatures rather than boxes.
		eyeY := float32(e.Rect.CenterY() - 4 + oy)
		vector.DrawFilledRect(screen, float32(e.Rect.X+8+ox), eyeY, 6, 6, colorBackground, false)
		vector.DrawFilledRect(screen, float32(e.Rect.X+e.Rect.W-14+ox), eyeY, 6, 6, colorBackground, false)
	}

	if snap.Boss != nil && snap.Boss.Active {
		fillRect(screen, snap.Boss.Rect, ox, oy, colorBoss)
		inner := snap.Boss.Rect
		inner.X += 15
		inner.Y += 6
		inner.W -= 30
		inner.H -= 12
		fillRect(screen, inner, ox, oy, colorBackground)
	}

	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		clr := colorBulletEnemy
		if b.FromPlayer {
			clr = colorBulletPlayer
		}
		fillRect(screen, b.Rect, ox, oy, clr)
	}

	// Player blinks while invulnerable.
	if snap.PlayerGrace <= 0 || int(snap.PlayerGrace*10)%2 == 0 {
		body := snap.Player
		body.X += 5
		body.Y += 4
		body.W -= 10
		body.H -= 8
		fillRect(screen, body, ox, oy, colorPlayer)
		nose := Rect{X: snap.Player.CenterX() - 4, Y: snap.Player.Y - 8, W: 8, H: 10}
		fillRect(screen, nose, ox, oy, colorPlayer)
	}

	for _, p := range ps.Particles() {
		alpha := 1.0 - p.Age/p.Lifetime
		size := p.Size * alpha * 2
		if size < 1 {
			size = 1
		}
		vector.DrawFilledRect(screen,
			float32(p.X-size/2+ox), float32(p.Y-size/2+oy),
			float32(size), float32(size), colorHighlight, false)
	}

	r.drawHUD(screen, snap, best)
}

func variantColor(v EnemyVariant) color.NRGBA {
	switch v {
	case EnemyTough:
		return colorEnemyTough
	case EnemyShooter:
		return colorEnemyShooter
	default:
		return colorEnemyCommon
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap Snapshot, best int) {
	r.text(screen, fmt.Sprintf("Score: %d", snap.Score), 8, 8, colorUI, 1)
	r.text(screen, fmt.Sprintf("High: %d", best), 8, 26, colorUI, 1)
	if snap.Multiplier > 1 {
		r.text(screen, fmt.Sprintf("x%d", snap.Multiplier), 8, 44, colorHighlight, 1)
	}
	r.text(screen, fmt.Sprintf("Wave: %d", snap.Wave), float64(r.cfg.ScreenWidth)/2-40, 8, colorUI, 1)
	for i := 0; i < snap.Lives; i++ {
		x := float64(r.cfg.ScreenWidth) - 28 - float64(i)*24
		vector.DrawFilledRect(screen, float32(x), 10, 16, 12, colorLives, false)
	}
	if snap.God {
		r.text(screen, "GODMODE", float64(r.cfg.ScreenWidth)-120, 30, colorLives, 1)
	}
}

// DrawMenu renders the title screen with controls and the top-5 list.
func (r *Renderer) DrawMenu(screen *ebiten.Image, records []Record, soundOn bool) {
	screen.Fill(colorBackground)
	cx := float64(r.cfg.ScreenWidth) / 2

	r.textCentered(screen, "SPACE INVADER", cx, 110, colorUI, 3)
	r.textCentered(screen, "Press Enter to Start", cx, 190, colorHighlight, 1)

	r.textCentered(screen, "Top-5 Highscores:", cx, 235, colorUI, 1)
	if len(records) == 0 {
		r.textCentered(screen, "no scores yet", cx, 257, colorDim, 1)
	}
	for i, rec := range records {
		line := fmt.Sprintf("%d. %s  %d", i+1, rec.Name, rec.Score)
		r.textCentered(screen, line, cx, 257+float64(i)*20, colorUI, 1)
	}

	tips := []string{
		"Left/Right or A/D - Move",
		"Space - Shoot",
		"P or Esc - Pause",
		"S - Toggle Sound",
		"Q - Quit",
	}
	for i, t := range tips {
		r.text(screen, t, cx-150, 390+float64(i)*20, colorDim, 1)
	}
	sound := "Sound: on"
	if !soundOn {
		sound = "Sound: off"
	}
	r.text(screen, sound, cx-150, 390+float64(len(tips))*20, colorDim, 1)
}

// DrawPaused dims the play field and shows the pause banner.
func (r *Renderer) DrawPaused(screen *ebiten.Image, snap Snapshot, ps *ParticleSystem, best int) {
	r.DrawPlaying(screen, snap, ps, best)
	r.dim(screen, 120)
	cx := float64(r.cfg.ScreenWidth) / 2
	cy := float64(r.cfg.ScreenHeight) / 2
	r.textCentered(screen, "Paused", cx, cy-40, colorUI, 2)
	r.textCentered(screen, "Press P or Enter to continue", cx, cy+10, colorHighlight, 1)
}

// DrawGameOver renders the end-of-run screen.
func (r *Renderer) DrawGameOver(screen *ebiten.Image, score int, madeHighscore bool) {
	screen.Fill(colorBackground)
	r.dim(screen, 140)
	cx := float64(r.cfg.ScreenWidth) / 2
	cy := float64(r.cfg.ScreenHeight) / 2
	r.textCentered(screen, "Game Over", cx, cy-100, colorUI, 2)
	r.textCentered(screen, fmt.Sprintf("Your score: %d", score), cx, cy-50, colorUI, 1)
	if madeHighscore {
		r.textCentered(screen, "New Highscore!", cx, cy-20, colorHighlight, 1)
	}
	r.textCentered(screen, "Press Enter for Menu", cx, cy+20, colorDim, 1)
}

func (r *Renderer) dim(screen *ebiten.Image, alpha uint8) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(r.cfg.ScreenWidth), float32(r.cfg.ScreenHeight),
		color.NRGBA{A: alpha}, false)
}

func (r *Renderer) text(screen *ebiten.Image, s string, x, y float64, clr color.NRGBA, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

func (r *Renderer) textCentered(screen *ebiten.Image, s string, cx, y float64, clr color.NRGBA, scale float64) {
	w, _ := text.Measure(s, r.face, 0)
	r.text(screen, s, cx-w*scale/2, y, clr, scale)
}

func fillRect(screen *ebiten.Image, rect Rect, ox, oy float64, clr color.NRGBA) {
	vector.DrawFilledRect(screen,
		float32(rect.X+ox), float32(rect.Y+oy),
		float32(rect.W), float32(rect.H), clr, false)
}
