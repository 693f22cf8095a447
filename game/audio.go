package game

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

// SoundManager generates and plays small procedural beeps. No sound files are
// shipped; every cue is synthesized once at startup and the resulting players
// are rewound per play. Muting is owned here, not by the session.
type SoundManager struct {
	ctx     *audio.Context
	players map[Cue]*audio.Player
	Enabled bool
}

// NewSoundManager builds all cue players on the given context. A nil context
// yields a silent manager, which keeps tests and headless runs simple.
func NewSoundManager(ctx *audio.Context) *SoundManager {
	sm := &SoundManager{
		ctx:     ctx,
		players: make(map[Cue]*audio.Player),
		Enabled: true,
	}
	if ctx == nil {
		return sm
	}
	rng := rand.New(rand.NewSource(1))
	sm.add(CueShoot, tone(880, 0.06, 0.25))
	sm.add(CueEnemyShoot, tone(440, 0.08, 0.18))
	sm.add(CueExplosion, noisePop(rng, 0.16, 0.3))
	sm.add(CueShieldBreak, noisePop(rng, 0.10, 0.2))
	sm.add(CuePlayerHit, noisePop(rng, 0.22, 0.35))
	sm.add(CueWaveStart, tone(660, 0.12, 0.25))
	sm.add(CueGameOver, tone(220, 0.30, 0.3))
	sm.add(CueHighscore, tone(1320, 0.22, 0.3))
	return sm
}

func (sm *SoundManager) add(c Cue, pcm []byte) {
	sm.players[c] = sm.ctx.NewPlayerFromBytes(pcm)
}

// Play plays a cue if sound is enabled.
func (sm *SoundManager) Play(c Cue) {
	if !sm.Enabled {
		return
	}
	p, ok := sm.players[c]
	if !ok {
		return
	}
	// Rewind errors only happen on closed players; ignore and try anyway.
	_ = p.Rewind()
	p.Play()
}

// Toggle flips the mute state and returns the new enabled value.
func (sm *SoundManager) Toggle() bool {
	sm.Enabled = !sm.Enabled
	return sm.Enabled
}

// tone renders a sine beep as 16-bit little-endian stereo PCM.
func tone(freq float64, seconds, volume float64) []byte {
	n := int(sampleRate * seconds)
	if n < 1 {
		n = 1
	}
	amp := 32767 * volume
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		// Short linear fade-out avoids a click at the end.
		env := 1.0
		if tail := float64(n-i) / float64(n); tail < 0.2 {
			env = tail / 0.2
		}
		s := int16(amp * env * math.Sin(2*math.Pi*freq*t))
		buf = appendSample(buf, s)
	}
	return buf
}

// noisePop renders a decaying white-noise burst.
func noisePop(rng *rand.Rand, seconds, volume float64) []byte {
	n := int(sampleRate * seconds)
	if n < 1 {
		n = 1
	}
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		decay := 1.0 - float64(i)/float64(n)
		s := int16(32767 * volume * decay * (rng.Float64()*2 - 1))
		buf = appendSample(buf, s)
	}
	return buf
}

// appendSample writes one sample to both stereo channels.
func appendSample(buf []byte, s int16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(s))
	return append(buf, b[0], b[1], b[0], b[1])
}
