// maze is a terminal maze game: escape hand-built and generated mazes
// against the clock.
//
// Usage:
//
//	maze list              - List game modes
//	maze play [mode]       - Play a mode (default: maze)
//	maze menu              - Pick a mode or level interactively
//	maze serve             - Start SSH server for remote play
//	maze scores [mode]     - Show best times for a mode
//	maze levels            - List campaign levels
//	maze generate          - Print a generated maze
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible mazes
//	--db <path>           - Set database path (default: ~/.maze/scores.db)
//	--config <path>       - Game config YAML
//	--levels <dir>        - Directory of custom levels
//	--difficulty <preset> - easy, normal, hard, fixed
//
// Defaults may also come from MAZE_* variables or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-escape/internal/config"
	"github.com/vovakirdan/maze-escape/internal/core"
	"github.com/vovakirdan/maze-escape/internal/levels"
	"github.com/vovakirdan/maze-escape/internal/registry"

	// Import game modes to register them
	_ "github.com/vovakirdan/maze-escape/internal/games/escape"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLogLevel   string
	flagNoSound    bool

	logger      *log.Logger
	envDefaults = config.DefaultEnv()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze Escape - find the exit in your terminal",
	Long: `Maze Escape is a terminal maze game. Walk from the entrance to the
exit of each maze; your time grades the run with up to three stars.

Available commands:
  list      - Show game modes
  play      - Play a mode directly
  menu      - Interactive mode and level picker
  serve     - Start SSH server for remote play
  scores    - View best times
  levels    - List campaign levels
  generate  - Print a generated maze

Examples:
  maze play
  maze play maze_endless --difficulty hard
  maze play --level 04
  maze generate --width 21 --height 11 --seed 42
  maze serve --ssh :2222`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	env := config.DefaultEnv()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with custom level files")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound cues")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(generateCmd)
}

// setup reads MAZE_* defaults for flags left unset and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	envDefaults = env

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if !flags.Changed("levels") {
		flagLevelsDir = env.LevelsDir
	}
	if !flags.Changed("config") {
		flagConfig = env.Config
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
		Level:           level,
	})

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

// gameOptions loads the game config, applies the difficulty preset and
// reads the campaign levels.
func gameOptions() (registry.Options, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return registry.Options{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Options{}, err
	}
	config.ApplyPreset(&cfg, preset)
	logger.Debug("game config loaded", "difficulty", preset, "steps", cfg.Animation.Steps)

	lvls, err := levels.Campaign(flagLevelsDir, logger)
	if err != nil {
		return registry.Options{}, err
	}

	return registry.Options{Config: cfg, Levels: lvls}, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fail prints an error and exits, as the other commands do.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
