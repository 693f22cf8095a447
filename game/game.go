package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// tickStep is the fixed simulation timestep. Ebiten calls Update at a fixed
// 60 ticks per second, so one Update is exactly one logical tick.
const tickStep = 1.0 / 60.0

// errQuit signals a clean exit out of ebiten.RunGame.
type errQuit struct{}

func (errQuit) Error() string { return "quit" }

// IsQuit reports whether RunGame returned because the player quit.
func IsQuit(err error) bool {
	_, ok := err.(errQuit)
	return ok
}

// Game is the ebiten shell: it owns the state machine, the current session,
// and the collaborators (renderer, sound, particles, highscores), and wires
// one keyboard sample into one session tick.
type Game struct {
	cfg Config

	state     StateMachine
	session   *Session
	renderer  *Renderer
	particles *ParticleSystem
	sound     *SoundManager
	scores    *HighscoreStore

	rng           *rand.Rand
	lastScore     int
	madeHighscore bool
}

// New assembles the game. The gdata manager may be nil, in which case
// highscores only live for the process lifetime.
func New(cfg Config, sound *SoundManager, storage *gdata.Manager) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Game{
		cfg:       cfg,
		state:     NewStateMachine(),
		renderer:  NewRenderer(cfg, rng),
		particles: NewParticleSystem(rng),
		sound:     sound,
		scores:    NewHighscoreStore(storage),
		rng:       rng,
	}
}

// Update advances one fixed tick.
func (g *Game) Update() error {
	in := ReadKeyboard()

	if in.ToggleSound && (g.state.Scene == SceneMenu || g.state.Scene == ScenePaused) {
		g.sound.Toggle()
	}

	prev := g.state.Scene
	startRun, quit := g.state.Apply(in)
	if quit {
		return errQuit{}
	}
	if startRun {
		g.startRun()
	}
	if prev == SceneGameOver && g.state.Scene == SceneMenu {
		// Re-read the list on menu entry in case another process changed it.
		if err := g.scores.Load(); err != nil {
			log.Printf("highscores: reload failed: %v", err)
		}
	}

	switch g.state.Scene {
	case ScenePlaying:
		g.tickPlaying(in)
	case ScenePaused, SceneMenu, SceneGameOver:
		// Tick loop suspended; nothing mutates.
	}
	return nil
}

func (g *Game) startRun() {
	g.session = NewSession(g.cfg, g.rng)
	g.particles.Clear()
	g.madeHighscore = false
	g.sound.Play(CueWaveStart)
}

func (g *Game) tickPlaying(in Input) {
	if in.ToggleGodMode {
		god := g.session.ToggleGodMode()
		log.Printf("god mode: %v", god)
	}
	if in.WaveStats {
		st := g.session.Waves.Stats()
		log.Printf("wave %d | enemies %d | speed %.1f | fire %.2f",
			st.Wave, st.Remaining, st.Speed, st.FireRate)
	}

	g.session.Advance(in, tickStep)

	for _, c := range g.session.DrainCues() {
		g.sound.Play(c)
	}
	for _, h := range g.session.DrainHits() {
		g.particles.Burst(h.X, h.Y)
		if h.Kind == BulletHitsPlayer {
			g.renderer.Shake(10)
		}
	}
	g.particles.Update(tickStep)
	g.renderer.Update(tickStep)

	if over, reason := g.session.Over(); over {
		g.state.EndRun()
		g.lastScore = g.session.Score
		g.madeHighscore = g.scores.Submit("", g.lastScore)
		if g.madeHighscore {
			g.sound.Play(CueHighscore)
		}
		log.Printf("run over (%s): score %d", endReasonString(reason), g.lastScore)
	}
}

func endReasonString(r EndReason) string {
	switch r {
	case EndOutOfLives:
		return "out of lives"
	case EndDefenseBreached:
		return "defense line breached"
	default:
		return "unknown"
	}
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state.Scene {
	case SceneMenu:
		g.renderer.DrawMenu(screen, g.scores.Top(), g.sound.Enabled)
	case ScenePlaying:
		g.renderer.DrawPlaying(screen, g.session.Snapshot(), g.particles, g.scores.Best())
	case ScenePaused:
		g.renderer.DrawPaused(screen, g.session.Snapshot(), g.particles, g.scores.Best())
	case SceneGameOver:
		g.renderer.DrawGameOver(screen, g.lastScore, g.madeHighscore)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
