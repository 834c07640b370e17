package maze

import "time"

// Outcome is the result of a move request.
type Outcome int

const (
	// OutcomeIgnored means the request was dropped: a move is still
	// animating, the level is already finished, or the target is off-grid.
	OutcomeIgnored Outcome = iota
	// OutcomeBlocked means the target cell is a wall.
	OutcomeBlocked
	// OutcomeMoved means the player stepped onto an open cell.
	OutcomeMoved
	// OutcomeReached means the player stepped onto the exit.
	OutcomeReached
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeBlocked:
		return "Blocked"
	case OutcomeMoved:
		return "Moved"
	case OutcomeReached:
		return "Reached"
	default:
		return "Unknown"
	}
}

// MoveResult describes what a Move did. Seconds and Tier are only set
// when Outcome is OutcomeReached.
type MoveResult struct {
	Outcome Outcome
	Row     int // Logical position after the move
	Col     int
	Seconds int // Whole seconds since Load
	Tier    Tier
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock replaces time.Now, for tests and replays.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAnimation sets the interpolation parameters.
func WithAnimation(cfg AnimationConfig) SessionOption {
	return func(s *Session) {
		s.anim = cfg
	}
}

// WithTiers sets the completion tier thresholds.
func WithTiers(p TierPolicy) SessionOption {
	return func(s *Session) {
		s.tiers = p
	}
}

// Session tracks a player moving through a loaded maze.
//
// The logical position is authoritative and changes as soon as a move is
// accepted. The animation position trails it and only catches up through
// Tick, so renderers can slide the player between cells. While a move is
// animating further moves are ignored.
//
// A Session is not safe for concurrent use; callers serialize Move and Tick.
type Session struct {
	maze  *Maze
	label string

	row, col     int
	animX, animY float64
	motion       motion
	animating    bool
	finished     bool
	startTime    time.Time
	result       MoveResult

	now   func() time.Time
	anim  AnimationConfig
	tiers TierPolicy
}

// NewSession creates an empty session. Load must be called before Move.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		now:   time.Now,
		anim:  DefaultAnimationConfig(),
		tiers: DefaultTierPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the maze and resets the player to the entrance.
// The label is carried for display only.
func (s *Session) Load(m *Maze, label string) {
	s.maze = m
	s.label = label
	s.row, s.col = EntranceRow, EntranceCol
	s.animX, s.animY = float64(EntranceCol), float64(EntranceRow)
	s.motion = motion{}
	s.animating = false
	s.finished = false
	s.result = MoveResult{}
	s.startTime = s.now()
}

// Move requests a one-cell step in the given direction.
func (s *Session) Move(d Direction) (MoveResult, error) {
	if s.maze == nil {
		return MoveResult{}, errNoLevel("move")
	}

	ignored := MoveResult{Outcome: OutcomeIgnored, Row: s.row, Col: s.col}
	if s.animating || s.finished {
		return ignored, nil
	}

	dr, dc := d.Delta()
	if dr == 0 && dc == 0 {
		return ignored, nil
	}
	nr, nc := s.row+dr, s.col+dc
	if !s.maze.InBounds(nr, nc) {
		return ignored, nil
	}

	switch s.maze.At(nr, nc) {
	case Wall:
		return MoveResult{Outcome: OutcomeBlocked, Row: s.row, Col: s.col}, nil

	case Exit:
		s.row, s.col = nr, nc
		// A finished session is idle, so the animation position rests on
		// the exit with the logical one.
		s.animX, s.animY = float64(nc), float64(nr)
		s.finished = true
		secs := int(s.now().Sub(s.startTime) / time.Second)
		if secs < 0 {
			secs = 0
		}
		s.result = MoveResult{
			Outcome: OutcomeReached,
			Row:     nr,
			Col:     nc,
			Seconds: secs,
			Tier:    s.tiers.Grade(secs),
		}
		return s.result, nil

	default:
		fromX, fromY := float64(s.col), float64(s.row)
		s.row, s.col = nr, nc
		if s.anim.Steps <= 0 {
			s.animX, s.animY = float64(nc), float64(nr)
		} else {
			s.motion = motion{
				fromX: fromX,
				fromY: fromY,
				toX:   float64(nc),
				toY:   float64(nr),
				steps: s.anim.Steps,
			}
			s.animating = true
		}
		return MoveResult{Outcome: OutcomeMoved, Row: nr, Col: nc}, nil
	}
}

// Tick advances an in-flight move by one step. The final step snaps the
// animation position onto the target cell and ends the animation.
func (s *Session) Tick() error {
	if s.maze == nil {
		return errNoLevel("tick")
	}
	if !s.animating {
		return nil
	}

	s.motion.ticks++
	if s.motion.done() {
		s.animX, s.animY = s.motion.toX, s.motion.toY
		s.animating = false
		s.motion = motion{}
		return nil
	}

	s.animX, s.animY = s.motion.position(s.anim.Easing)
	return nil
}

// AnimPosition returns the render position as (x, y) = (col, row).
func (s *Session) AnimPosition() (x, y float64) {
	return s.animX, s.animY
}

// LogicalPosition returns the player's cell.
func (s *Session) LogicalPosition() (row, col int) {
	return s.row, s.col
}

// Animating reports whether a move is in flight.
func (s *Session) Animating() bool {
	return s.animating
}

// Progress returns the in-flight move completion in [0, 1], or 1 when idle.
func (s *Session) Progress() float64 {
	if !s.animating {
		return 1
	}
	return s.motion.progress()
}

// Finished reports whether the exit has been reached since the last Load.
func (s *Session) Finished() bool {
	return s.finished
}

// Result returns the completion result, valid once Finished is true.
func (s *Session) Result() MoveResult {
	return s.result
}

// Loaded reports whether a maze has been loaded.
func (s *Session) Loaded() bool {
	return s.maze != nil
}

// Maze returns the loaded maze, or nil.
func (s *Session) Maze() *Maze {
	return s.maze
}

// Label returns the label passed to Load.
func (s *Session) Label() string {
	return s.label
}

// StartTime returns when the current maze was loaded.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// Elapsed returns whole seconds since Load, frozen at the completion time
// once the exit is reached.
func (s *Session) Elapsed() int {
	if s.finished {
		return s.result.Seconds
	}
	if s.maze == nil {
		return 0
	}
	secs := int(s.now().Sub(s.startTime) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
