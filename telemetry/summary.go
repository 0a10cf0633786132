package telemetry

import "log/slog"

// RunSummary is the end-of-run record.
type RunSummary struct {
	RunID       string  `yaml:"run_id"`
	Seed        int64   `yaml:"seed"`
	Ticks       int32   `yaml:"ticks"`
	SimTimeSec  float64 `yaml:"sim_time"`
	PlayerDied  bool    `yaml:"player_died"`
	Gold        int     `yaml:"gold"`
	Goal        int     `yaml:"goal"`
	Percent     int     `yaml:"percent"`
	GoalReached bool    `yaml:"goal_reached"`
	Kills       int     `yaml:"kills"`
	WavesFired  int     `yaml:"waves_fired"`
	DamageTaken float64 `yaml:"damage_taken"`
}

// Add folds a window's counters into the summary totals.
func (s *RunSummary) Add(w WindowStats) {
	s.Kills += w.Kills
	s.WavesFired += w.WavesFired
	s.DamageTaken += w.DamageTaken
}

// LogSummary logs the summary using slog.
func (s RunSummary) LogSummary() {
	slog.Info("run finished",
		"run_id", s.RunID,
		"ticks", s.Ticks,
		"sim_time", s.SimTimeSec,
		"player_died", s.PlayerDied,
		"gold", s.Gold,
		"goal", s.Goal,
		"percent", s.Percent,
		"kills", s.Kills,
	)
}
