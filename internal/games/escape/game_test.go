package escape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-escape/internal/config"
	"github.com/vovakirdan/maze-escape/internal/core"
	"github.com/vovakirdan/maze-escape/internal/levels"
	"github.com/vovakirdan/maze-escape/internal/maze"
	"github.com/vovakirdan/maze-escape/internal/registry"
)

// trivialRows has the exit directly right of the entrance.
var trivialRows = []string{
	"#####",
	"#PE #",
	"#   #",
	"#####",
}

func trivialLevel(id string) levels.Level {
	return levels.Level{ID: id, Name: "Trivial", Rows: trivialRows}
}

func testConfig() config.MazeConfig {
	cfg := config.DefaultMazeConfig()
	cfg.Campaign.ClearDelay = 5
	return cfg
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newCampaign(t *testing.T, lvls ...levels.Level) *Game {
	t.Helper()
	g, err := New(ModeCampaign, registry.Options{Config: testConfig(), Levels: lvls})
	require.NoError(t, err)
	g.Reset(runtimeConfig(1))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func stepN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(frame())
	}
}

// solve returns a shortest path from the entrance to the exit.
func solve(t *testing.T, m *maze.Maze) []core.Action {
	t.Helper()
	type cell struct{ r, c int }
	moves := []struct {
		a      core.Action
		dr, dc int
	}{
		{core.ActionUp, -1, 0},
		{core.ActionDown, 1, 0},
		{core.ActionLeft, 0, -1},
		{core.ActionRight, 0, 1},
	}

	start := cell{maze.EntranceRow, maze.EntranceCol}
	er, ec := m.Exit()
	goal := cell{er, ec}

	prev := map[cell]cell{}
	via := map[cell]core.Action{}
	seen := map[cell]bool{start: true}
	queue := []cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		for _, mv := range moves {
			next := cell{cur.r + mv.dr, cur.c + mv.dc}
			if seen[next] || !m.At(next.r, next.c).Walkable() {
				continue
			}
			seen[next] = true
			prev[next] = cur
			via[next] = mv.a
			queue = append(queue, next)
		}
	}
	require.True(t, seen[goal], "exit unreachable")

	var path []core.Action
	for cur := goal; cur != start; cur = prev[cur] {
		path = append([]core.Action{via[cur]}, path...)
	}
	return path
}

// walk feeds a path into the game, waiting out each animation.
func walk(g *Game, path []core.Action) []core.Event {
	var events []core.Event
	for _, a := range path {
		for g.Session().Animating() {
			g.Step(frame())
		}
		events = append(events, g.Step(frame(a)).Events...)
	}
	return events
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{CampaignID, EndlessID} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id, registry.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestBuiltinCampaignByDefault(t *testing.T) {
	g, err := New(ModeCampaign, registry.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 6, g.LevelCount())

	g.Reset(runtimeConfig(1))
	assert.Equal(t, "01", g.Snapshot().LevelID)
}

func TestStartLevel(t *testing.T) {
	g, err := New(ModeCampaign, registry.Options{Config: testConfig(), StartLevel: "03"})
	require.NoError(t, err)
	g.Reset(runtimeConfig(1))
	assert.Equal(t, 2, g.Snapshot().LevelIndex)

	_, err = New(ModeCampaign, registry.Options{Config: testConfig(), StartLevel: "nope"})
	assert.Error(t, err)
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.Steps = -1
	_, err := New(ModeEndless, registry.Options{Config: cfg})
	assert.Error(t, err)
}

func TestWallBumpEvent(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"))

	res := g.Step(frame(core.ActionLeft))
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventBump, res.Events[0].Kind)
	assert.Equal(t, "t1", res.Events[0].LevelID)

	snap := g.Snapshot()
	assert.Equal(t, []int{1, 1}, []int{snap.Row, snap.Col})
	assert.Equal(t, 1, snap.Bumps)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestEscapeEvent(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"), trivialLevel("t2"))

	res := g.Step(frame(core.ActionRight))
	require.True(t, res.Has(core.EventEscape))

	ev := res.Events[0]
	assert.Equal(t, "t1", ev.LevelID)
	assert.Equal(t, "Level t1: Trivial", ev.Label)
	assert.Equal(t, 0, ev.Seconds)
	assert.Equal(t, "top", ev.Tier)

	assert.Equal(t, 300, res.State.Score)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, StateLevelCleared, g.Snapshot().State)
}

func TestClearDelayAdvances(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"), trivialLevel("t2"))
	g.Step(frame(core.ActionRight))

	stepN(g, 4)
	assert.Equal(t, StateLevelCleared, g.Snapshot().State)

	g.Step(frame())
	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, "t2", snap.LevelID)
	assert.Equal(t, []int{1, 1}, []int{snap.Row, snap.Col})
}

func TestConfirmSkipsDelay(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"), trivialLevel("t2"))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionConfirm))
	assert.Equal(t, "t2", g.Snapshot().LevelID)
}

func TestCampaignWin(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"))
	g.Step(frame(core.ActionRight))
	res := g.Step(frame(core.ActionConfirm))

	assert.True(t, res.State.GameOver)
	assert.Equal(t, StateWin, g.Snapshot().State)

	// Input is ignored once the campaign is over
	res = g.Step(frame(core.ActionDown))
	assert.Empty(t, res.Events)
}

func TestAnimationAcrossSteps(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"))

	res := g.Step(frame(core.ActionDown))
	assert.True(t, res.Has(core.EventMove))

	snap := g.Snapshot()
	assert.Equal(t, StateAnimating, snap.State)
	assert.Equal(t, []int{2, 1}, []int{snap.Row, snap.Col})
	assert.Equal(t, 1.0, snap.AnimY, "no tick has run since the move")

	stepN(g, 5)
	assert.InDelta(t, 1.5, g.Snapshot().AnimY, 1e-9)

	stepN(g, 5)
	snap = g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 1.0, snap.AnimX)
	assert.Equal(t, 2.0, snap.AnimY)
}

func TestInputIgnoredWhileAnimating(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"))
	g.Step(frame(core.ActionDown))

	res := g.Step(frame(core.ActionRight))
	assert.Empty(t, res.Events)

	snap := g.Snapshot()
	assert.Equal(t, []int{2, 1}, []int{snap.Row, snap.Col})
}

func TestFirstDirectionWins(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"))

	res := g.Step(frame(core.ActionLeft, core.ActionRight))
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventBump, res.Events[0].Kind)
}

func TestTimerTiers(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"))

	// 1859 idle ticks plus the move tick is 31s at 60 ticks per second
	stepN(g, 1859)
	assert.Equal(t, 30, g.Snapshot().Elapsed)

	res := g.Step(frame(core.ActionRight))
	require.True(t, res.Has(core.EventEscape))
	assert.Equal(t, 31, res.Events[0].Seconds)
	assert.Equal(t, "mid", res.Events[0].Tier)
	assert.Equal(t, 200, res.State.Score)
}

func TestPauseFreezesTimer(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"))

	res := g.Step(frame(core.ActionPause))
	assert.True(t, res.State.Paused)

	stepN(g, 600)
	assert.Equal(t, StatePaused, g.Snapshot().State)
	assert.Empty(t, g.Step(frame(core.ActionRight)).Events, "moves ignored while paused")

	g.Step(frame(core.ActionPause))
	res = g.Step(frame(core.ActionRight))
	require.True(t, res.Has(core.EventEscape))
	assert.Equal(t, 0, res.Events[0].Seconds)
}

func TestRestartLevel(t *testing.T) {
	g := newCampaign(t, trivialLevel("t1"))
	g.Step(frame(core.ActionDown))
	stepN(g, 130)
	assert.Equal(t, 2, g.Snapshot().Elapsed)

	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot()
	assert.Equal(t, []int{1, 1}, []int{snap.Row, snap.Col})
	assert.Equal(t, 0, snap.Elapsed)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestGeneratedCampaignLevelSolvable(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	require.NoError(t, err)
	lvl, err := levels.Find(lvls, "04")
	require.NoError(t, err)

	g := newCampaign(t, lvl)
	events := walk(g, solve(t, g.Session().Maze()))

	require.NotEmpty(t, events)
	assert.Equal(t, core.EventEscape, events[len(events)-1].Kind)
}

func TestEndlessGrows(t *testing.T) {
	g, err := New(ModeEndless, registry.Options{Config: testConfig()})
	require.NoError(t, err)
	g.Reset(runtimeConfig(7))

	assert.Equal(t, "11x9", g.Snapshot().LevelID)
	assert.Zero(t, g.LevelCount())

	events := walk(g, solve(t, g.Session().Maze()))
	last := events[len(events)-1]
	require.Equal(t, core.EventEscape, last.Kind)
	assert.Equal(t, "11x9", last.LevelID)

	g.Step(frame(core.ActionConfirm))
	snap := g.Snapshot()
	assert.Equal(t, "13x11", snap.LevelID)
	assert.Equal(t, 1, snap.LevelIndex)
	assert.False(t, g.State().GameOver, "endless never ends")
}

func TestEndlessDeterministic(t *testing.T) {
	run := func(seed int64) Snapshot {
		g, err := New(ModeEndless, registry.Options{Config: testConfig()})
		require.NoError(t, err)
		g.Reset(runtimeConfig(seed))
		for _, a := range []core.Action{core.ActionDown, core.ActionRight, core.ActionDown} {
			g.Step(frame(a))
			stepN(g, 10)
		}
		return g.Snapshot()
	}

	a, b := run(99), run(99)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Grid, run(100).Grid)
}

func TestTooSmallWindow(t *testing.T) {
	g, err := New(ModeCampaign, registry.Options{Config: testConfig(), Levels: []levels.Level{trivialLevel("t1")}})
	require.NoError(t, err)
	g.Reset(core.RuntimeConfig{ScreenW: 4, ScreenH: 5, TickRate: 60, Seed: 1})

	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.Empty(t, g.Step(frame(core.ActionRight)).Events)

	screen := core.NewScreen(40, 12)
	g.Resize(40, 12)
	assert.Equal(t, StatePlaying, g.Snapshot().State)

	g.Resize(4, 5)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRender(t *testing.T) {
	g, err := New(ModeCampaign, registry.Options{Config: testConfig(), Levels: []levels.Level{trivialLevel("t1")}})
	require.NoError(t, err)
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})

	screen := core.NewScreen(40, 12)
	g.Render(screen)

	// 5x4 maze with two-column cells centered below the HUD
	originX, originY := (40-10)/2, 3+(12-3-4)/2
	assert.Equal(t, wallRune, screen.Get(originX, originY))
	assert.Equal(t, core.ColorWall, screen.GetCell(originX, originY).Color)
	assert.Equal(t, playerRune, screen.Get(originX+2, originY+1))
	assert.Equal(t, playerRune, screen.Get(originX+3, originY+1))
	assert.Equal(t, core.ColorPlayer, screen.GetCell(originX+2, originY+1).Color)
	assert.Equal(t, exitRune, screen.Get(originX+4, originY+1))
	assert.Equal(t, ' ', screen.Get(originX+2, originY+2))

	assert.Contains(t, screen.Row(0), "Level t1: Trivial")
	assert.Contains(t, screen.Row(1), "Time: 0s")

	g.Step(frame(core.ActionRight))
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "ESCAPED!"))
	assert.Contains(t, screen.String(), "★★★")
}
