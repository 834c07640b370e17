// Package escape implements the maze escape game in campaign and endless modes.
package escape

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-escape/internal/config"
	"github.com/vovakirdan/maze-escape/internal/core"
	"github.com/vovakirdan/maze-escape/internal/levels"
	"github.com/vovakirdan/maze-escape/internal/maze"
	"github.com/vovakirdan/maze-escape/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry IDs of the two modes.
const (
	CampaignID = "maze"
	EndlessID  = "maze_endless"
)

// epoch anchors the simulated clock handed to the session.
var epoch = time.Unix(0, 0).UTC()

// Game drives a maze.Session from platform input frames.
// Time is measured in played ticks, so pausing stops the level timer.
type Game struct {
	mode   Mode
	cfg    config.MazeConfig
	levels []levels.Level
	start  int // Campaign index to begin at

	rng      *rand.Rand
	tickRate int
	tick     uint64
	played   uint64 // Ticks spent in active play, drives the level timer

	session    *maze.Session
	levelIndex int // Campaign index, or number of endless mazes cleared
	levelID    string
	score      int
	bumps      int
	lastResult maze.MoveResult
	lastPoints int
	loadErr    error

	// Screen dimensions and layout
	screenW, screenH int
	cellW            int
	originX, originY int

	// Game state flags
	paused       bool
	tooSmall     bool
	levelCleared bool
	clearTicks   int
	won          bool
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          CampaignID,
		Title:       "Maze Escape",
		Description: "Hand-built and generated levels, graded by time",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(ModeCampaign, opts)
	})
	registry.Register(registry.GameInfo{
		ID:          EndlessID,
		Title:       "Maze Escape (Endless)",
		Description: "Freshly generated mazes that grow after every escape",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(ModeEndless, opts)
	})
}

// New creates a game in the given mode. An empty level table means the
// built-in campaign.
func New(mode Mode, opts registry.Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		mode: mode,
		cfg:  opts.Config,
	}

	if mode == ModeEndless {
		return g, nil
	}

	g.levels = opts.Levels
	if len(g.levels) == 0 {
		builtin, err := levels.Builtin().LoadAll()
		if err != nil {
			return nil, err
		}
		g.levels = builtin
	}
	if len(g.levels) == 0 {
		return nil, fmt.Errorf("escape: no levels to play")
	}

	if opts.StartLevel != "" {
		g.start = levels.Index(g.levels, opts.StartLevel)
		if g.start < 0 {
			return nil, fmt.Errorf("escape: unknown start level %q", opts.StartLevel)
		}
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Maze Escape (Endless)"
	}
	return "Maze Escape"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game from the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.played = 0
	g.score = 0
	g.bumps = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.levelCleared = false
	g.clearTicks = 0
	g.won = false
	g.lastResult = maze.MoveResult{}
	g.lastPoints = 0

	g.session = maze.NewSession(
		maze.WithClock(g.now),
		maze.WithAnimation(g.cfg.Animation.MazeAnimation()),
		maze.WithTiers(g.cfg.Tiers.Policy()),
	)

	g.levelIndex = 0
	if g.mode == ModeCampaign {
		g.levelIndex = g.start
	}
	g.loadLevel()
}

// Resize updates the layout without restarting the level.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout()
}

// now is the session clock: the played ticks converted to time.
func (g *Game) now() time.Time {
	return epoch.Add(time.Duration(g.played) * time.Second / time.Duration(g.tickRate))
}

// loadLevel builds the maze for the current level index and hands it to the session.
func (g *Game) loadLevel() {
	var (
		m     *maze.Maze
		label string
		err   error
	)

	if g.mode == ModeEndless {
		w, h := g.cfg.Endless.Size(g.levelIndex)
		m, err = maze.Generate(w, h, g.rng)
		g.levelID = fmt.Sprintf("%dx%d", w, h)
		label = fmt.Sprintf("Maze #%d (%dx%d)", g.levelIndex+1, w, h)
	} else {
		lvl := g.levels[g.levelIndex]
		m, err = lvl.Build(g.rng)
		g.levelID = lvl.ID
		label = lvl.Label()
	}

	g.loadErr = err
	if err != nil {
		return
	}
	g.session.Load(m, label)
	g.layout()
}

// restartLevel reloads the current maze and restarts its timer.
func (g *Game) restartLevel() {
	m := g.session.Maze()
	if m == nil {
		return
	}
	g.session.Load(m, g.session.Label())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.loadErr != nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.levelCleared && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.won {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.clearTicks++
		skip := in.Has(core.ActionConfirm)
		if skip || (g.cfg.Campaign.AutoAdvance && g.clearTicks >= g.cfg.Campaign.ClearDelay) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restartLevel()
		return core.StepResult{State: g.State()}
	}

	g.played++

	// Animation advances before input so a move queued on the final
	// animation tick is accepted.
	//nolint:errcheck // The session is always loaded here
	g.session.Tick()

	var events []core.Event
	if dir, ok := direction(in.FirstDirection()); ok {
		events = g.move(dir)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// move applies one directional input and reports the resulting events.
func (g *Game) move(dir maze.Direction) []core.Event {
	res, err := g.session.Move(dir)
	if err != nil {
		return nil
	}

	switch res.Outcome {
	case maze.OutcomeBlocked:
		g.bumps++
		return []core.Event{g.event(core.EventBump)}
	case maze.OutcomeMoved:
		return []core.Event{g.event(core.EventMove)}
	case maze.OutcomeReached:
		g.lastResult = res
		g.lastPoints = g.cfg.Tiers.Points(res.Tier)
		g.score += g.lastPoints
		g.levelCleared = true
		g.clearTicks = 0

		ev := g.event(core.EventEscape)
		ev.Seconds = res.Seconds
		ev.Tier = res.Tier.String()
		return []core.Event{ev}
	}
	return nil
}

func (g *Game) event(kind core.EventKind) core.Event {
	return core.Event{Kind: kind, LevelID: g.levelID, Label: g.session.Label()}
}

// advanceLevel moves to the next level, or ends the campaign.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.clearTicks = 0

	if g.mode == ModeCampaign && g.levelIndex >= len(g.levels)-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// direction maps a platform action onto a maze direction.
func direction(a core.Action) (maze.Direction, bool) {
	switch a {
	case core.ActionUp:
		return maze.DirUp, true
	case core.ActionDown:
		return maze.DirDown, true
	case core.ActionLeft:
		return maze.DirLeft, true
	case core.ActionRight:
		return maze.DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won || g.loadErr != nil,
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the underlying maze session, read-only by convention.
func (g *Game) Session() *maze.Session {
	return g.session
}

// LevelCount returns the number of campaign levels, 0 in endless mode.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart level | Enter: Next | Q: Quit"
}
