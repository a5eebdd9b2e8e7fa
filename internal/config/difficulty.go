package config

// DifficultyPreset is a named difficulty level. Presets only rescale
// the built-in per-level rules; there is no free-form difficulty knob.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset rescales the config for a difficulty preset. Unknown or
// empty presets leave the config untouched (normal).
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		scaleSpeeds(cfg, 0.8)
		cfg.Level.Multiplier = 1.1
	case DifficultyHard:
		scaleSpeeds(cfg, 1.25)
		cfg.Level.Multiplier = 1.3
	case DifficultyFixed:
		// Same speed forever: levels advance without scaling.
		cfg.Level.Multiplier = 1.0
	}
}

func scaleSpeeds(cfg *GameConfig, factor float64) {
	for i := range cfg.Rows.Speeds {
		cfg.Rows.Speeds[i] *= factor
	}
	for i := range cfg.Planks {
		cfg.Planks[i].Speed *= factor
	}
	cfg.Hazards.CrocSpeed *= factor
}
