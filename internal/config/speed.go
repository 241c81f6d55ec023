package config

// SpeedSchedule decides the step interval as the score grows.
type SpeedSchedule struct {
	cfg SpeedConfig
}

// NewSpeedSchedule creates a schedule from its config.
func NewSpeedSchedule(cfg SpeedConfig) SpeedSchedule {
	return SpeedSchedule{cfg: cfg}
}

// Base returns the interval a new game starts with.
func (s SpeedSchedule) Base() float64 {
	return s.cfg.BaseInterval
}

// Floor returns the smallest interval the schedule will produce.
func (s SpeedSchedule) Floor() float64 {
	return s.cfg.MinInterval
}

// Next returns the interval after the score changed to score.
// The interval drops by one step each time score lands on a multiple of
// EveryScore while it is still above the floor, and never goes below it.
func (s SpeedSchedule) Next(score int, current float64) float64 {
	if !s.cfg.Enabled || s.cfg.EveryScore <= 0 {
		return current
	}
	if score%s.cfg.EveryScore != 0 || current <= s.cfg.MinInterval {
		return current
	}
	return max(current-s.cfg.Step, s.cfg.MinInterval)
}
