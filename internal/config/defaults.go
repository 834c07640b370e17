package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the hard-coded configuration used when no YAML
// source is readable.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Animation: AnimationConfig{
			Steps:  10,
			Easing: "linear",
		},
		Tiers: TiersConfig{
			TopSeconds: 30,
			MidSeconds: 60,
			TopPoints:  300,
			MidPoints:  200,
			LowPoints:  100,
		},
		Endless: EndlessConfig{
			StartWidth:  11,
			StartHeight: 9,
			Growth:      1,
			MaxWidth:    61,
			MaxHeight:   31,
		},
		Campaign: CampaignConfig{
			ClearDelay:  120,
			AutoAdvance: true,
		},
	}
}
