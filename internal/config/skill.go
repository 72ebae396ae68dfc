package config

import "fmt"

// SkillPreset represents a named autopilot skill level.
type SkillPreset string

const (
	SkillEasy   SkillPreset = "easy"
	SkillNormal SkillPreset = "normal"
	SkillHard   SkillPreset = "hard"
)

// ParseSkill validates a skill preset name.
func ParseSkill(name string) (SkillPreset, error) {
	switch p := SkillPreset(name); p {
	case SkillEasy, SkillNormal, SkillHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: %w: unknown skill %q (want easy, normal or hard)", ErrInvalid, name)
	}
}

// ApplySkillPreset scales the autopilot around its configured values.
// Normal leaves the config untouched.
func ApplySkillPreset(cfg *AutopilotConfig, preset SkillPreset) {
	switch preset {
	case SkillEasy:
		cfg.MaxSpeed *= 0.5
		cfg.DangerRadius *= 0.5
		cfg.Dodge = 0
	case SkillHard:
		cfg.MaxSpeed *= 1.5
		cfg.DangerRadius *= 1.25
		cfg.Dodge *= 1.5
	}
}
