package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Endless mazes never grow
)

// Presets lists the accepted preset names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy loosens the time tiers, hard tightens them and starts endless mode
// on bigger mazes.
func ApplyPreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Tiers.TopSeconds = cfg.Tiers.TopSeconds * 3 / 2
		cfg.Tiers.MidSeconds = cfg.Tiers.MidSeconds * 3 / 2
		cfg.Endless.resizeStart(9, 7)
	case DifficultyHard:
		cfg.Tiers.TopSeconds = cfg.Tiers.TopSeconds * 2 / 3
		cfg.Tiers.MidSeconds = cfg.Tiers.MidSeconds * 2 / 3
		cfg.Endless.resizeStart(cfg.Endless.StartWidth+10, cfg.Endless.StartHeight+6)
		cfg.Endless.Growth *= 2
	case DifficultyFixed:
		cfg.Endless.Growth = 0
	}
}

// resizeStart moves the endless start size, staying within the max size.
func (e *EndlessConfig) resizeStart(width, height int) {
	e.StartWidth = capOdd(width, e.StartWidth, e.MaxWidth)
	e.StartHeight = capOdd(height, e.StartHeight, e.MaxHeight)
}
