package service

import (
	"time"

	"github.com/limbo/bookwise/pkg/entity"
)

// Streak and weekly-window decisions are kept as pure functions over
// (record, now) so the lazy read-path checks and any future periodic sweep
// share one implementation.

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(dateOf(b).Sub(dateOf(a)) / (24 * time.Hour))
}

// advanceStreak applies the completion-day rule: no change if already counted
// today, +1 on a consecutive day, restart at 1 after a gap or on the first
// completion ever. Returns false when the milestone was left untouched.
func advanceStreak(m *entity.Milestone, now time.Time) bool {
	last := m.LastCompletionDate
	if last != nil && sameDay(*last, now) {
		// Already counted today
		return false
	}
	if last != nil && daysBetween(*last, now) == 1 {
		m.DailyStreak++
	} else {
		m.DailyStreak = 1
	}
	t := now
	m.LastCompletionDate = &t
	return true
}

// decayStreak zeroes the streak once more than one calendar day passed since
// the last completion. Returns false when nothing changed.
func decayStreak(m *entity.Milestone, now time.Time) bool {
	if m.DailyStreak == 0 || m.LastCompletionDate == nil {
		return false
	}
	if daysBetween(*m.LastCompletionDate, now) > 1 {
		m.DailyStreak = 0
		return true
	}
	return false
}

// rollWindow restarts the 7-day window once it expired: progress to 0,
// anchor to today. Returns false when the window is still open or no goal
// was ever set.
func rollWindow(g *entity.WeeklyGoal, now time.Time) bool {
	if g.WeekStartDate == nil {
		return false
	}
	if daysBetween(*g.WeekStartDate, now) > 7 {
		g.Progress = 0
		t := dateOf(now)
		g.WeekStartDate = &t
		return true
	}
	return false
}
