package maze

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// trivial is a maze whose exit sits right of the entrance.
var trivial = []string{
	"#####",
	"#PE #",
	"#   #",
	"#####",
}

func loadLevel(t *testing.T, rows []string, opts ...SessionOption) *Session {
	t.Helper()
	m, err := Parse(rows)
	require.NoError(t, err)
	s := NewSession(opts...)
	s.Load(m, "test")
	return s
}

func tickN(t *testing.T, s *Session, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, s.Tick())
	}
}

func TestSessionRequiresLoad(t *testing.T) {
	s := NewSession()

	_, err := s.Move(DirDown)
	assert.True(t, errors.Is(err, ErrNoLevel))
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "move", stateErr.Op)

	err = s.Tick()
	assert.True(t, errors.Is(err, ErrNoLevel))
	assert.False(t, s.Loaded())
}

func TestSessionLoadResets(t *testing.T) {
	clock := newFakeClock()
	s := loadLevel(t, level1, WithClock(clock.Now))

	row, col := s.LogicalPosition()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
	x, y := s.AnimPosition()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)
	assert.False(t, s.Animating())
	assert.Equal(t, clock.Now(), s.StartTime())
	assert.Equal(t, "test", s.Label())
}

func TestSessionMoveIntoWall(t *testing.T) {
	s := loadLevel(t, level1)

	res, err := s.Move(DirLeft)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlocked, res.Outcome)

	row, col := s.LogicalPosition()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
	assert.False(t, s.Animating())
}

func TestSessionMoveIntoOpenCell(t *testing.T) {
	s := loadLevel(t, level1)

	res, err := s.Move(DirDown)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, res.Outcome)
	assert.True(t, s.Animating())

	row, col := s.LogicalPosition()
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	tickN(t, s, DefaultAnimationConfig().Steps)

	assert.False(t, s.Animating())
	row, col = s.LogicalPosition()
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)
	x, y := s.AnimPosition()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
}

func TestSessionAnimationInterpolates(t *testing.T) {
	s := loadLevel(t, level1)

	_, err := s.Move(DirRight)
	require.NoError(t, err)

	tickN(t, s, 5)
	x, y := s.AnimPosition()
	assert.InDelta(t, 1.5, x, 1e-9)
	assert.InDelta(t, 1.0, y, 1e-9)
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)

	tickN(t, s, 4)
	assert.True(t, s.Animating())

	tickN(t, s, 1)
	assert.False(t, s.Animating())
	x, _ = s.AnimPosition()
	assert.Equal(t, 2.0, x)
}

func TestSessionEaseOutLeadsLinear(t *testing.T) {
	s := loadLevel(t, level1, WithAnimation(AnimationConfig{Steps: 4, Easing: EasingEaseOut}))

	_, err := s.Move(DirRight)
	require.NoError(t, err)
	tickN(t, s, 2)

	x, _ := s.AnimPosition()
	assert.InDelta(t, 1.75, x, 1e-9)
}

func TestSessionAnimationLock(t *testing.T) {
	s := loadLevel(t, level1)

	_, err := s.Move(DirDown)
	require.NoError(t, err)
	tickN(t, s, 3)

	res, err := s.Move(DirDown)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, res.Outcome)

	row, col := s.LogicalPosition()
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	// A wall bump during flight is also dropped rather than reported.
	res, err = s.Move(DirLeft)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, res.Outcome)

	tickN(t, s, 7)
	res, err = s.Move(DirDown)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, res.Outcome)
	row, _ = s.LogicalPosition()
	assert.Equal(t, 3, row)
}

func TestSessionTickWhenIdleIsNoop(t *testing.T) {
	s := loadLevel(t, level1)
	tickN(t, s, 3)

	x, y := s.AnimPosition()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)
	assert.Equal(t, 1.0, s.Progress())
}

func TestSessionNoAnimationSnaps(t *testing.T) {
	s := loadLevel(t, level1, WithAnimation(AnimationConfig{Steps: 0}))

	res, err := s.Move(DirDown)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, res.Outcome)
	assert.False(t, s.Animating())

	x, y := s.AnimPosition()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
}

func TestSessionOutOfBoundsIgnored(t *testing.T) {
	// Hand-authored level with an opening in the border next to the entrance.
	rows := []string{
		"# ###",
		"#P  #",
		"#  E#",
		"#####",
	}
	s := loadLevel(t, rows)

	res, err := s.Move(DirUp)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, res.Outcome)
	tickN(t, s, 10)

	res, err = s.Move(DirUp)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, res.Outcome)
	row, col := s.LogicalPosition()
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, col)
}

func TestSessionReachExit(t *testing.T) {
	clock := newFakeClock()
	s := loadLevel(t, trivial, WithClock(clock.Now))

	res, err := s.Move(DirRight)
	require.NoError(t, err)
	assert.Equal(t, OutcomeReached, res.Outcome)
	assert.GreaterOrEqual(t, res.Seconds, 0)
	assert.Equal(t, TierTop, res.Tier)
	assert.True(t, s.Finished())
	assert.False(t, s.Animating())

	row, col := s.LogicalPosition()
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
	x, y := s.AnimPosition()
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 1.0, y)

	// Terminal until the next Load.
	res, err = s.Move(DirLeft)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, res.Outcome)

	m := s.Maze()
	s.Load(m, "again")
	assert.False(t, s.Finished())
	row, col = s.LogicalPosition()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestSessionReachExitTiers(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		seconds int
		tier    Tier
	}{
		{"instant", 0, 0, TierTop},
		{"at top limit", 30*time.Second + 900*time.Millisecond, 30, TierTop},
		{"just mid", 31 * time.Second, 31, TierMid},
		{"at mid limit", 60 * time.Second, 60, TierMid},
		{"slow", 61 * time.Second, 61, TierLow},
		{"very slow", 10 * time.Minute, 600, TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			s := loadLevel(t, trivial, WithClock(clock.Now))
			clock.Advance(tt.elapsed)

			res, err := s.Move(DirRight)
			require.NoError(t, err)
			assert.Equal(t, OutcomeReached, res.Outcome)
			assert.Equal(t, tt.seconds, res.Seconds)
			assert.Equal(t, tt.tier, res.Tier)
			assert.Equal(t, tt.seconds, s.Elapsed())
		})
	}
}

func TestSessionCustomTiers(t *testing.T) {
	clock := newFakeClock()
	s := loadLevel(t, trivial, WithClock(clock.Now), WithTiers(TierPolicy{TopSeconds: 5, MidSeconds: 10}))
	clock.Advance(7 * time.Second)

	res, err := s.Move(DirRight)
	require.NoError(t, err)
	assert.Equal(t, TierMid, res.Tier)
}

func TestSessionGridNotMutated(t *testing.T) {
	m, err := Parse(level1)
	require.NoError(t, err)
	before := m.Rows()

	s := NewSession()
	s.Load(m, "level 1")
	_, err = s.Move(DirDown)
	require.NoError(t, err)
	tickN(t, s, 10)

	assert.Equal(t, before, m.Rows())
}

func TestSessionWalkGeneratedMaze(t *testing.T) {
	m, err := GenerateSeeded(11, 9, 5)
	require.NoError(t, err)
	s := NewSession(WithAnimation(AnimationConfig{Steps: 2}))
	s.Load(m, "generated")

	// Every accepted move must land on a walkable cell.
	dirs := []Direction{DirRight, DirDown, DirLeft, DirUp}
	for i := 0; i < 200; i++ {
		res, err := s.Move(dirs[i%len(dirs)])
		require.NoError(t, err)
		row, col := s.LogicalPosition()
		assert.True(t, m.At(row, col).Walkable())
		if res.Outcome == OutcomeReached {
			break
		}
		tickN(t, s, 2)
	}
}

func TestTierSymbols(t *testing.T) {
	assert.Equal(t, "★★★", TierTop.Symbol())
	assert.Equal(t, "★★☆", TierMid.Symbol())
	assert.Equal(t, "★☆☆", TierLow.Symbol())
	assert.Equal(t, "", TierNone.Symbol())
	assert.Equal(t, TierMid, ParseTier(TierMid.String()))
}
