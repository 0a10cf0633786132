package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkKillStreak  BookmarkType = "kill_streak"
	BookmarkEnemySurge  BookmarkType = "enemy_surge"
	BookmarkGoldRush    BookmarkType = "gold_rush"
	BookmarkCloseCall   BookmarkType = "close_call"
	BookmarkGoalReached BookmarkType = "goal_reached"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	RunID       string       `csv:"run_id"`
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments in a run from window stats.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	goldGoal      int
	closeCallAt   float64 // player health at or below this counts as a close call
	inCloseCall   bool
	goalTriggered bool
}

// NewBookmarkDetector creates a detector with the given history size.
// goldGoal is the gold total that ends the run in a win; closeCallHealth is the
// health at or below which a surviving player is considered in danger.
func NewBookmarkDetector(historySize, goldGoal int, closeCallHealth float64) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		goldGoal:    goldGoal,
		closeCallAt: closeCallHealth,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		// Kill streak: kills > 2x rolling average
		if b := bd.checkKillStreak(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Enemy surge: live enemies > 2x rolling average
		if b := bd.checkEnemySurge(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Gold rush: gold collected > 2x rolling average
		if b := bd.checkGoldRush(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	if b := bd.checkCloseCall(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkGoalReached(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	for i := range bookmarks {
		bookmarks[i].RunID = stats.RunID
	}
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// average returns the mean of f over the history.
func (bd *BookmarkDetector) average(f func(WindowStats) float64) float64 {
	history := bd.getHistory()
	if len(history) == 0 {
		return 0
	}
	var sum float64
	for _, h := range history {
		sum += f(h)
	}
	return sum / float64(len(history))
}

func (bd *BookmarkDetector) checkKillStreak(stats WindowStats) *Bookmark {
	if len(bd.getHistory()) < 3 {
		return nil
	}
	avg := bd.average(func(s WindowStats) float64 { return float64(s.Kills) })
	if avg == 0 {
		return nil
	}

	if float64(stats.Kills) > avg*2.0 && stats.Kills >= 5 {
		return &Bookmark{
			Type:        BookmarkKillStreak,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d kills is %.1fx average (%.1f)", stats.Kills, float64(stats.Kills)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkEnemySurge(stats WindowStats) *Bookmark {
	if len(bd.getHistory()) < 3 {
		return nil
	}
	avg := bd.average(func(s WindowStats) float64 { return float64(s.Enemies) })
	if avg == 0 {
		return nil
	}

	if float64(stats.Enemies) > avg*2.0 && stats.Enemies >= 8 {
		return &Bookmark{
			Type:        BookmarkEnemySurge,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d live enemies is %.1fx average (%.1f)", stats.Enemies, float64(stats.Enemies)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkGoldRush(stats WindowStats) *Bookmark {
	if len(bd.getHistory()) < 3 {
		return nil
	}
	avg := bd.average(func(s WindowStats) float64 { return float64(s.GoldCollected) })
	if avg == 0 {
		return nil
	}

	if float64(stats.GoldCollected) > avg*2.0 && stats.GoldCollected >= 100 {
		return &Bookmark{
			Type:        BookmarkGoldRush,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d gold collected is %.1fx average (%.1f)", stats.GoldCollected, float64(stats.GoldCollected)/avg, avg),
		}
	}
	return nil
}

// checkCloseCall fires once each time the player enters the danger zone.
func (bd *BookmarkDetector) checkCloseCall(stats WindowStats) *Bookmark {
	danger := stats.PlayerHealth > 0 && stats.PlayerHealth <= bd.closeCallAt
	if !danger {
		bd.inCloseCall = false
		return nil
	}
	if bd.inCloseCall {
		return nil
	}
	bd.inCloseCall = true
	return &Bookmark{
		Type:        BookmarkCloseCall,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Player down to %.0f health with %d enemies alive", stats.PlayerHealth, stats.Enemies),
	}
}

func (bd *BookmarkDetector) checkGoalReached(stats WindowStats) *Bookmark {
	if bd.goalTriggered || bd.goldGoal <= 0 || stats.PlayerGold < bd.goldGoal {
		return nil
	}
	bd.goalTriggered = true
	return &Bookmark{
		Type:        BookmarkGoalReached,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Gold goal %d reached with %d", bd.goldGoal, stats.PlayerGold),
	}
}
