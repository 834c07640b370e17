package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-escape/internal/audio"
	"github.com/vovakirdan/maze-escape/internal/audio/speaker"
	"github.com/vovakirdan/maze-escape/internal/games/escape"
	"github.com/vovakirdan/maze-escape/internal/platform/tui"
	"github.com/vovakirdan/maze-escape/internal/registry"
	"github.com/vovakirdan/maze-escape/internal/storage"
)

const soundVolume = 0.6

var flagStartLevel string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode, the campaign when omitted.

Controls:
  Arrows/WASD/HJKL  - Move
  P/Esc             - Pause
  R                 - Restart the level (new game after the campaign)
  Enter             - Next level
  B                 - Back
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Generous tier times, smaller endless mazes
  normal - Config values as they are
  hard   - Tight tier times, larger and faster-growing endless mazes
  fixed  - Endless mazes keep their starting size

Examples:
  maze play
  maze play --level 03
  maze play maze_endless --difficulty hard
  maze play --levels ./my-levels --config ./maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStartLevel, "level", "", "Campaign level ID to start from")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := escape.CampaignID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown mode %q\nRun 'maze list' to see available modes.", gameID)
	}

	opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}
	opts.StartLevel = flagStartLevel

	game, err := registry.Create(gameID, opts)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore()
	cues, closeAudio := openAudio()

	_, runErr := tui.Run(game, store, runtimeConfig(), tui.WithCues(cues))

	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// openStore opens the scores database; the game runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openAudio starts the speaker unless sound is off or unavailable.
func openAudio() (audio.Cues, func()) {
	cues, closeFn, err := speaker.Open(!flagNoSound, soundVolume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return cues, closeFn
}
