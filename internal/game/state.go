package game

// State is the session lifecycle state.
type State string

const (
	StateMenu     State = "menu"
	StatePlaying  State = "playing"
	StateFeedback State = "feedback"
	StatePaused   State = "paused"
	StateGameOver State = "gameover"
)

// active reports whether a session is in progress.
func (s State) active() bool {
	return s == StatePlaying || s == StateFeedback || s == StatePaused
}
