package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/leafcorps/medic-bot/internal/domain"
	"github.com/leafcorps/medic-bot/internal/domain/contract"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

// rebuildLeaderboard regenerates one month's leaderboard sheet from the
// report log. The sheet is created with the default pool the first time this
// month is seen; after that the stored pool is authoritative so an operator
// edit survives rebuilds. The write is a full clear-then-replace, never an
// incremental patch.
func (s *medicService) rebuildLeaderboard(ctx context.Context, year int, month time.Month) (*entity.Leaderboard, error) {
	reports, err := s.dm.Report().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load report log: %w", err)
	}

	ranks, err := s.dm.MasterLog().GetRanks()
	if err != nil {
		return nil, fmt.Errorf("failed to load ranks: %w", err)
	}

	if _, err := s.dm.Leaderboard().EnsureSheet(year, month, domain.DefaultPool); err != nil {
		return nil, fmt.Errorf("failed to ensure leaderboard sheet: %w", err)
	}

	pool, err := s.dm.Leaderboard().GetPool(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load pool: %w", err)
	}

	totals := aggregateReports(reports, monthFilter(year, month))
	board := buildLeaderboard(year, month, pool, totals, ranks)

	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		return dm.Leaderboard().Replace(year, month, board.Rows)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write leaderboard: %w", err)
	}

	return board, nil
}

// buildLeaderboard is the pure ranking and payout step: apply rank bonuses,
// sort by adjusted points descending (medic name ascending breaks exact
// ties, so rebuild output is deterministic) and apportion the pool
// proportionally. No data for the month yields an empty row set, which is the
// valid placeholder state rather than an error.
func buildLeaderboard(year int, month time.Month, pool float64, totals map[string]*medicTotals, ranks map[string]string) *entity.Leaderboard {
	board := &entity.Leaderboard{Year: year, Month: month, Pool: pool}
	if len(totals) == 0 {
		return board
	}

	rows := make([]*entity.LeaderboardRow, 0, len(totals))
	for medic, mt := range totals {
		rank := ranks[medic]
		if rank == "" {
			rank = domain.DefaultRank
		}

		mult := bonusForRank(rank)
		rows = append(rows, &entity.LeaderboardRow{
			Medic:           medic,
			RawPoints:       mt.RawPoints,
			JobsLogged:      mt.Jobs,
			RankTitle:       rank,
			BonusMultiplier: mult,
			AdjustedPoints:  float64(mt.RawPoints) * mult,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AdjustedPoints != rows[j].AdjustedPoints {
			return rows[i].AdjustedPoints > rows[j].AdjustedPoints
		}
		return rows[i].Medic < rows[j].Medic
	})

	var totalAdjusted float64
	for _, row := range rows {
		totalAdjusted += row.AdjustedPoints
	}

	for i, row := range rows {
		row.Rank = i + 1

		// Guard against an all-zero month; everyone's share is simply 0.
		var share float64
		if totalAdjusted > 0 {
			share = row.AdjustedPoints / totalAdjusted
		}
		row.TotalPay = round2(share * pool)
		row.AdjustedPoints = round2(row.AdjustedPoints)

		// The pool total is recorded once, on the top-ranked row.
		if i == 0 {
			row.TotalRyo = pool
			row.HasPool = true
		}
	}

	board.Rows = rows
	return board
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
