package domain

import (
	"sort"
	"time"
)

// RankingEntry is a user's leaderboard-visible snapshot. There is at
// most one entry per user id; updates replace the whole entry.
type RankingEntry struct {
	UserID      string
	DisplayName string
	XP          int
	Level       int
	UpdatedAt   time.Time
}

// SortRanking orders entries by descending xp, ties broken by ascending
// user id, which makes positions a deterministic total order.
func SortRanking(entries []*RankingEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].XP != entries[j].XP {
			return entries[i].XP > entries[j].XP
		}
		return entries[i].UserID < entries[j].UserID
	})
}
