package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the set of named, debounced actions for one tick. The core only
// ever sees this struct, never raw key codes.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Shoot     bool

	Pause   bool
	Confirm bool
	Quit    bool

	ToggleSound bool

	// Debug actions
	WaveStats     bool
	ToggleGodMode bool
	SkipWave      bool
}

// ReadKeyboard samples the keyboard into an Input. Movement and shooting are
// level-triggered; everything else fires once per press.
func ReadKeyboard() Input {
	return Input{
		MoveLeft:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight:     ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Shoot:         ebiten.IsKeyPressed(ebiten.KeySpace),
		Pause:         inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Confirm:       inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:          inpututil.IsKeyJustPressed(ebiten.KeyQ),
		ToggleSound:   inpututil.IsKeyJustPressed(ebiten.KeyS),
		WaveStats:     inpututil.IsKeyJustPressed(ebiten.KeyF1),
		ToggleGodMode: inpututil.IsKeyJustPressed(ebiten.KeyF2),
		SkipWave:      inpututil.IsKeyJustPressed(ebiten.KeyF3),
	}
}
