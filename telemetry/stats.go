package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Live counts at window end
	Enemies int `csv:"enemies"`
	Bonuses int `csv:"bonuses"`

	// Spawns during window
	WeakSpawns   int `csv:"weak_spawns"`
	FastSpawns   int `csv:"fast_spawns"`
	StrongSpawns int `csv:"strong_spawns"`
	BonusSpawns  int `csv:"bonus_spawns"`

	// Combat
	WavesFired      int     `csv:"waves_fired"`
	WaveHits        int     `csv:"wave_hits"`
	Kills           int     `csv:"kills"`
	DamageDealt     float64 `csv:"damage_dealt"`
	Contacts        int     `csv:"contacts"`
	ContactsBlocked int     `csv:"contacts_blocked"`
	DamageTaken     float64 `csv:"damage_taken"`
	HitRate         float64 `csv:"hit_rate"`  // wave hits per wave fired
	KillRate        float64 `csv:"kill_rate"` // kills per wave hit

	// Pickups
	GoldCollected  int `csv:"gold_collected"`
	HealthPickups  int `csv:"health_pickups"`
	AttackPickups  int `csv:"attack_pickups"`
	BonusesExpired int `csv:"bonuses_expired"`

	// Player state at window end
	PlayerHealth float64 `csv:"player_health"`
	PlayerCharge float64 `csv:"player_charge"`
	PlayerGold   int     `csv:"player_gold"`

	// Enemy speed distribution (sampled at window end)
	EnemySpeedMean float64 `csv:"enemy_speed_mean"`
	EnemySpeedStd  float64 `csv:"enemy_speed_std"`
	EnemySpeedP10  float64 `csv:"enemy_speed_p10"`
	EnemySpeedP50  float64 `csv:"enemy_speed_p50"`
	EnemySpeedP90  float64 `csv:"enemy_speed_p90"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDistStats calculates mean, standard deviation and percentiles.
// The standard deviation is the unbiased sample estimate; it is 0 for fewer
// than two values.
func ComputeDistStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID),
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("enemies", s.Enemies),
		slog.Int("bonuses", s.Bonuses),
		slog.Int("weak_spawns", s.WeakSpawns),
		slog.Int("fast_spawns", s.FastSpawns),
		slog.Int("strong_spawns", s.StrongSpawns),
		slog.Int("bonus_spawns", s.BonusSpawns),
		slog.Int("waves_fired", s.WavesFired),
		slog.Int("wave_hits", s.WaveHits),
		slog.Int("kills", s.Kills),
		slog.Float64("damage_dealt", s.DamageDealt),
		slog.Int("contacts", s.Contacts),
		slog.Int("contacts_blocked", s.ContactsBlocked),
		slog.Float64("damage_taken", s.DamageTaken),
		slog.Float64("hit_rate", s.HitRate),
		slog.Float64("kill_rate", s.KillRate),
		slog.Int("gold_collected", s.GoldCollected),
		slog.Int("health_pickups", s.HealthPickups),
		slog.Int("attack_pickups", s.AttackPickups),
		slog.Int("bonuses_expired", s.BonusesExpired),
		slog.Float64("player_health", s.PlayerHealth),
		slog.Float64("player_charge", s.PlayerCharge),
		slog.Int("player_gold", s.PlayerGold),
		slog.Float64("enemy_speed_mean", s.EnemySpeedMean),
		slog.Float64("enemy_speed_std", s.EnemySpeedStd),
		slog.Float64("enemy_speed_p50", s.EnemySpeedP50),
		slog.Float64("enemy_speed_p90", s.EnemySpeedP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"enemies", s.Enemies,
		"kills", s.Kills,
		"damage_taken", s.DamageTaken,
		"gold", s.PlayerGold,
		"health", s.PlayerHealth,
	)
}
