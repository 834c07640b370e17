package escape

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateAnimating    GameStateType = "animating"
	StateLevelCleared GameStateType = "level_cleared"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
	StateLoadFailed   GameStateType = "load_failed"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	LevelIndex int
	LevelID    string
	Score      int
	Bumps      int
	Row, Col   int
	AnimX      float64
	AnimY      float64
	Elapsed    int
	Grid       string // Serialized maze
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil:
		state = StateLoadFailed
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	case g.levelCleared:
		state = StateLevelCleared
	case g.session != nil && g.session.Animating():
		state = StateAnimating
	}

	snap := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		LevelIndex: g.levelIndex,
		LevelID:    g.levelID,
		Score:      g.score,
		Bumps:      g.bumps,
		State:      state,
	}
	if g.session != nil && g.session.Loaded() {
		snap.Row, snap.Col = g.session.LogicalPosition()
		snap.AnimX, snap.AnimY = g.session.AnimPosition()
		snap.Elapsed = g.session.Elapsed()
		snap.Grid = g.session.Maze().String()
	}
	return snap
}
