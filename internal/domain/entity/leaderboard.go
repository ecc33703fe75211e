package entity

import "time"

// LeaderboardRow is one ranked entry of a monthly leaderboard sheet.
// TotalRyo (the payout pool) is recorded once, on the first-ranked row;
// HasPool marks that row so zero pools are distinguishable from blanks.
type LeaderboardRow struct {
	Rank            int
	Medic           string
	RawPoints       int
	JobsLogged      int
	RankTitle       string
	BonusMultiplier float64
	AdjustedPoints  float64
	TotalPay        float64
	TotalRyo        float64
	HasPool         bool
}

// Leaderboard is the fully rebuilt table for one calendar month. An empty
// Rows slice is the valid "no data for this month" state, not an error.
type Leaderboard struct {
	Year  int
	Month time.Month
	Pool  float64
	Rows  []*LeaderboardRow
}

// SheetTitle returns the sheet name used for this month's leaderboard,
// e.g. "Leaderboard - Jan 2025".
func (l *Leaderboard) SheetTitle() string {
	return LeaderboardSheetTitle(l.Year, l.Month)
}

func LeaderboardSheetTitle(year int, month time.Month) string {
	return "Leaderboard - " + time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// LeaderboardSheet identifies one monthly sheet and its payout pool.
type LeaderboardSheet struct {
	Year  int
	Month time.Month
	Pool  float64
}
