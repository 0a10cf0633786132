package systems

import (
	"math"
	"testing"

	"github.com/slsyy/ects/components"
)

// scriptedRand replays fixed values. Float64 and Intn draw from separate queues;
// an exhausted queue returns zero.
type scriptedRand struct {
	floats []float64
	ints   []int
	intArg []int // n passed to each Intn call
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	r.intArg = append(r.intArg, n)
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		panic("scripted Intn value out of range")
	}
	return v
}

func testTable() SpawnTable {
	return SpawnTable{
		Intervals: [spawnCategoryCount]Range{
			SpawnEnemy:  {Min: 3, Max: 8},
			SpawnGold:   {Min: 0.25, Max: 2.25},
			SpawnHealth: {Min: 2.5, Max: 12.5},
			SpawnAttack: {Min: 2, Max: 12},
		},
		EnemyRoll:    21,
		FastBelow:    3,
		StrongBelow:  6,
		GoldRareOdds: 10,
		GoldCommon:   IntRange{Min: 10, Max: 30},
		GoldRare:     IntRange{Min: 40, Max: 80},
		GoldTop:      IntRange{Min: 80, Max: 100},
		HealthValue:  1,
		BonusTTL: [3]Range{
			components.BonusGold:   {Min: 3, Max: 8},
			components.BonusHealth: {Min: 1, Max: 5},
			components.BonusAttack: {Min: 2, Max: 5},
		},
	}
}

var testArena = Arena{X0: 0, Y0: 100, X1: 800, Y1: 600}

func TestSpawnerFiresAllOnFirstUpdate(t *testing.T) {
	s := NewSpawner(testTable(), testArena, &scriptedRand{})
	reqs := s.Update(1.0 / 70)

	if len(reqs) != 4 {
		t.Fatalf("got %d requests, want 4", len(reqs))
	}
	want := []SpawnCategory{SpawnEnemy, SpawnGold, SpawnHealth, SpawnAttack}
	for i, c := range want {
		if reqs[i].Category != c {
			t.Errorf("request %d category = %v, want %v", i, reqs[i].Category, c)
		}
	}
}

func TestSpawnerReaddsInterval(t *testing.T) {
	// Every Float64 returns 0.5: enemy interval 5.5, gold 1.25, health 7.5, attack 7.
	rng := &scriptedRand{floats: repeat(0.5, 64)}
	s := NewSpawner(testTable(), testArena, rng)

	s.Update(0.1)
	if got := s.Timer(SpawnEnemy); math.Abs(got-(5.5-0.1)) > 1e-9 {
		t.Errorf("enemy timer = %v, want %v", got, 5.5-0.1)
	}

	// Advance to just past the gold timer; overshoot must carry.
	reqs := s.Update(1.25)
	if len(reqs) != 1 || reqs[0].Category != SpawnGold {
		t.Fatalf("requests = %+v, want one gold", reqs)
	}
	// timer was 1.15, minus 1.25 = -0.1, plus 1.25 = 1.15
	if got := s.Timer(SpawnGold); math.Abs(got-1.15) > 1e-9 {
		t.Errorf("gold timer = %v, want 1.15", got)
	}
}

func TestSpawnerFiresAfterMinimumInterval(t *testing.T) {
	rng := &scriptedRand{floats: repeat(0, 64)} // intervals at their minimum
	s := NewSpawner(testTable(), testArena, rng)
	s.Update(0.01)

	reqs := s.Update(3) // enemy timer 2.99 -> -0.01
	found := false
	for _, r := range reqs {
		if r.Category == SpawnEnemy {
			found = true
		}
	}
	if !found {
		t.Error("enemy did not spawn after its interval elapsed")
	}
}

func TestSpawnerEnemyRoll(t *testing.T) {
	tests := []struct {
		roll int
		want components.EnemyVariant
	}{
		{0, components.EnemyFast},
		{2, components.EnemyFast},
		{3, components.EnemyStrong},
		{5, components.EnemyStrong},
		{6, components.EnemyWeak},
		{20, components.EnemyWeak},
	}

	for _, tt := range tests {
		// Intn calls: x, y, variant
		rng := &scriptedRand{ints: []int{0, 0, tt.roll}}
		s := NewSpawner(testTable(), testArena, rng)
		req := s.roll(SpawnEnemy)
		if req.Enemy != tt.want {
			t.Errorf("roll %d: variant = %v, want %v", tt.roll, req.Enemy, tt.want)
		}
		if rng.intArg[2] != 21 {
			t.Errorf("variant roll used Intn(%d), want Intn(21)", rng.intArg[2])
		}
	}
}

func TestSpawnerGoldTiers(t *testing.T) {
	tests := []struct {
		name string
		ints []int // x, y, then gold rolls
		want int
	}{
		{"common low", []int{0, 0, 1, 0}, 10},
		{"common high", []int{0, 0, 9, 20}, 30},
		{"rare low", []int{0, 0, 0, 5, 0}, 40},
		{"rare high", []int{0, 0, 0, 5, 40}, 80},
		{"top low", []int{0, 0, 0, 0, 0}, 80},
		{"top high", []int{0, 0, 0, 0, 20}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{ints: tt.ints}
			s := NewSpawner(testTable(), testArena, rng)
			req := s.roll(SpawnGold)
			if req.Value != tt.want {
				t.Errorf("Value = %d, want %d", req.Value, tt.want)
			}
			if req.Bonus != components.BonusGold {
				t.Errorf("Bonus = %v, want Gold", req.Bonus)
			}
		})
	}
}

func TestSpawnerPositionAndTTL(t *testing.T) {
	rng := &scriptedRand{ints: []int{800, 500}, floats: []float64{1}}
	s := NewSpawner(testTable(), testArena, rng)
	req := s.roll(SpawnHealth)

	if req.X != 800 || req.Y != 600 {
		t.Errorf("position = (%v, %v), want (800, 600)", req.X, req.Y)
	}
	if rng.intArg[0] != 801 || rng.intArg[1] != 501 {
		t.Errorf("position rolls used Intn(%d), Intn(%d), want 801, 501", rng.intArg[0], rng.intArg[1])
	}
	if req.Value != 1 {
		t.Errorf("health value = %d, want 1", req.Value)
	}
	if req.TTL != 5 {
		t.Errorf("TTL = %v, want 5", req.TTL)
	}
}

func TestSpawnerAttackBonusTTL(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.5}}
	s := NewSpawner(testTable(), testArena, rng)
	req := s.roll(SpawnAttack)
	if req.Bonus != components.BonusAttack {
		t.Errorf("Bonus = %v, want Attack", req.Bonus)
	}
	if math.Abs(req.TTL-3.5) > 1e-9 {
		t.Errorf("TTL = %v, want 3.5", req.TTL)
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
