package config

import "fmt"

// SpeedPreset represents a named frame rate.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedInsane SpeedPreset = "insane"
)

// FrameRateForPreset returns the frame rate for a speed preset.
func FrameRateForPreset(preset SpeedPreset) (int, bool) {
	switch preset {
	case SpeedSlow:
		return 8, true
	case SpeedNormal:
		return 10, true
	case SpeedFast:
		return 15, true
	case SpeedInsane:
		return 30, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset sets the frame rate from a preset name.
// An empty preset leaves the config unchanged.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	rate, ok := FrameRateForPreset(preset)
	if !ok {
		return fmt.Errorf("%w: speed %q (want slow, normal, fast or insane)", ErrInvalid, preset)
	}
	cfg.Speed = string(preset)
	cfg.FrameRate = rate
	return nil
}
