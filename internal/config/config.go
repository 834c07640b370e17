// Package config provides YAML-based game configuration loading,
// difficulty presets and environment defaults for the maze game.
package config

import (
	"fmt"

	"github.com/vovakirdan/maze-escape/internal/maze"
)

// MazeConfig contains all tunable parameters of the maze game.
type MazeConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Tiers     TiersConfig     `yaml:"tiers"`
	Endless   EndlessConfig   `yaml:"endless"`
	Campaign  CampaignConfig  `yaml:"campaign"`
}

// AnimationConfig controls how the player glides between cells.
type AnimationConfig struct {
	Steps  int    `yaml:"steps"`  // Ticks per move, 0 disables animation
	Easing string `yaml:"easing"` // "linear" or "ease-out"
}

// TiersConfig defines completion time thresholds and the points each tier
// is worth.
type TiersConfig struct {
	TopSeconds int `yaml:"top_seconds"`
	MidSeconds int `yaml:"mid_seconds"`
	TopPoints  int `yaml:"top_points"`
	MidPoints  int `yaml:"mid_points"`
	LowPoints  int `yaml:"low_points"`
}

// EndlessConfig defines how generated mazes grow in endless mode.
type EndlessConfig struct {
	StartWidth  int `yaml:"start_width"`
	StartHeight int `yaml:"start_height"`
	Growth      int `yaml:"growth"` // Cells added to each side per cleared maze
	MaxWidth    int `yaml:"max_width"`
	MaxHeight   int `yaml:"max_height"`
}

// CampaignConfig controls level flow in the campaign.
type CampaignConfig struct {
	ClearDelay  int  `yaml:"clear_delay"` // Ticks the level-cleared banner stays up
	AutoAdvance bool `yaml:"auto_advance"`
}

// MazeAnimation converts the section into the session's animation settings.
func (a AnimationConfig) MazeAnimation() maze.AnimationConfig {
	easing := a.Easing
	if easing == "" {
		easing = maze.EasingLinear
	}
	return maze.AnimationConfig{Steps: a.Steps, Easing: easing}
}

// Policy returns the tier grading policy.
func (t TiersConfig) Policy() maze.TierPolicy {
	return maze.TierPolicy{TopSeconds: t.TopSeconds, MidSeconds: t.MidSeconds}
}

// Points returns the score awarded for finishing a level in the given tier.
func (t TiersConfig) Points(tier maze.Tier) int {
	switch tier {
	case maze.TierTop:
		return t.TopPoints
	case maze.TierMid:
		return t.MidPoints
	case maze.TierLow:
		return t.LowPoints
	default:
		return 0
	}
}

// Size returns the dimensions of the n-th endless maze (0-based).
// Growth stops at the largest odd size within the max; a zero max means
// no cap. Only meaningful for a config that passed Validate.
func (e EndlessConfig) Size(n int) (width, height int) {
	if n < 0 {
		n = 0
	}
	width = capOdd(e.StartWidth+2*n*e.Growth, e.StartWidth, e.MaxWidth)
	height = capOdd(e.StartHeight+2*n*e.Growth, e.StartHeight, e.MaxHeight)
	return width, height
}

// capOdd limits a grown dimension to max, keeping it odd and at least start.
func capOdd(v, start, max int) int {
	if max <= 0 || v <= max {
		return v
	}
	v = max
	if v%2 == 0 {
		v--
	}
	if v < start {
		v = start
	}
	return v
}

func (e EndlessConfig) validate() error {
	if err := maze.ValidateDimensions(e.StartWidth, e.StartHeight); err != nil {
		return fmt.Errorf("config: endless start size: %w", err)
	}
	if e.MaxWidth != 0 && e.MaxWidth < e.StartWidth {
		return fmt.Errorf("config: endless.max_width %d is below start_width %d", e.MaxWidth, e.StartWidth)
	}
	if e.MaxHeight != 0 && e.MaxHeight < e.StartHeight {
		return fmt.Errorf("config: endless.max_height %d is below start_height %d", e.MaxHeight, e.StartHeight)
	}
	if e.Growth < 0 {
		return fmt.Errorf("config: endless.growth must not be negative, got %d", e.Growth)
	}
	return nil
}

// Validate checks that the configuration describes a playable game.
func (c MazeConfig) Validate() error {
	if c.Animation.Steps < 0 {
		return fmt.Errorf("config: animation.steps must not be negative, got %d", c.Animation.Steps)
	}
	switch c.Animation.Easing {
	case "", maze.EasingLinear, maze.EasingEaseOut:
	default:
		return fmt.Errorf("config: unknown animation.easing %q", c.Animation.Easing)
	}
	if c.Tiers.TopSeconds < 0 || c.Tiers.MidSeconds < c.Tiers.TopSeconds {
		return fmt.Errorf("config: tiers need 0 <= top_seconds <= mid_seconds, got %d/%d",
			c.Tiers.TopSeconds, c.Tiers.MidSeconds)
	}
	if err := c.Endless.validate(); err != nil {
		return err
	}
	if c.Campaign.ClearDelay < 0 {
		return fmt.Errorf("config: campaign.clear_delay must not be negative, got %d", c.Campaign.ClearDelay)
	}
	return nil
}
