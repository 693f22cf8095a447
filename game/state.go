package game

// Scene is the top-level game state. Exactly one scene is active at a time.
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
	ScenePaused
	SceneGameOver
)

// String returns the scene name for logs.
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case ScenePlaying:
		return "playing"
	case ScenePaused:
		return "paused"
	case SceneGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// StateMachine applies the scene transition rules. Inputs that have no
// meaning in the current scene are ignored. Gameplay-driven transitions
// (lives reaching zero, an enemy crossing the defense line) are reported by
// the session and applied through EndRun.
type StateMachine struct {
	Scene Scene
}

// NewStateMachine starts in the menu.
func NewStateMachine() StateMachine {
	return StateMachine{Scene: SceneMenu}
}

// Apply handles one tick's input actions and returns what the shell must do:
// start a fresh run, or quit the process.
func (m *StateMachine) Apply(in Input) (startRun, quit bool) {
	switch m.Scene {
	case SceneMenu:
		if in.Confirm {
			m.Scene = ScenePlaying
			return true, false
		}
		if in.Quit {
			return false, true
		}
	case ScenePlaying:
		if in.Pause {
			m.Scene = ScenePaused
		}
	case ScenePaused:
		if in.Pause || in.Confirm {
			m.Scene = ScenePlaying
		}
		if in.Quit {
			return false, true
		}
	case SceneGameOver:
		if in.Confirm {
			m.Scene = SceneMenu
		}
	}
	return false, false
}

// EndRun transitions Playing to GameOver. Called by the shell in the same
// tick the session reports the run is over.
func (m *StateMachine) EndRun() {
	if m.Scene == ScenePlaying {
		m.Scene = SceneGameOver
	}
}
