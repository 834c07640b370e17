package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds process defaults read from the environment.
type Env struct {
	DBPath    string // MAZE_DB
	FPS       int    // MAZE_FPS
	SSHAddr   string // MAZE_SSH_ADDR
	LogLevel  string // MAZE_LOG_LEVEL
	LevelsDir string // MAZE_LEVELS_DIR
	Config    string // MAZE_CONFIG
}

// DefaultEnv returns the values used when nothing is set.
func DefaultEnv() Env {
	return Env{
		DBPath:   "~/.maze/scores.db",
		FPS:      60,
		SSHAddr:  ":2222",
		LogLevel: "info",
	}
}

// LoadEnv loads .env files (default ".env" in the working directory) if
// they exist and reads the MAZE_* variables. Variables already set in the
// process environment win over file values.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("config: load env file: %w", err)
	}

	def := DefaultEnv()
	fps, err := getEnvAsInt("MAZE_FPS", def.FPS)
	if err != nil {
		return Env{}, err
	}

	return Env{
		DBPath:    getEnvWithDefault("MAZE_DB", def.DBPath),
		FPS:       fps,
		SSHAddr:   getEnvWithDefault("MAZE_SSH_ADDR", def.SSHAddr),
		LogLevel:  getEnvWithDefault("MAZE_LOG_LEVEL", def.LogLevel),
		LevelsDir: getEnvWithDefault("MAZE_LEVELS_DIR", def.LevelsDir),
		Config:    getEnvWithDefault("MAZE_CONFIG", def.Config),
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, or the default if unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}
